package seeder

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"time"

	"github.com/brianvoe/gofakeit/v6"
)

// Runner posts generated events to a running instance of the API.
type Runner struct {
	BaseURL  string
	Count    int
	Interval time.Duration
	Entities []string

	HTTPClient *http.Client
}

// NewRunner creates a runner with a sane HTTP timeout.
func NewRunner(baseURL string, count int, interval time.Duration, entities []string) *Runner {
	if len(entities) == 0 {
		entities = Entities
	}
	return &Runner{
		BaseURL:  baseURL,
		Count:    count,
		Interval: interval,
		Entities: entities,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Run generates and sends Count events, spread over the configured entities.
func (r *Runner) Run() error {
	gofakeit.Seed(time.Now().UnixNano())

	log.Printf("Starting event seeder:")
	log.Printf("  Base URL: %s", r.BaseURL)
	log.Printf("  Event count: %d", r.Count)
	log.Printf("  Interval: %v", r.Interval)
	log.Printf("  Entities: %v", r.Entities)

	successCount := 0
	failCount := 0

	for i := 0; i < r.Count; i++ {
		entity := r.Entities[rand.Intn(len(r.Entities))]

		payload, err := GeneratePayload(entity)
		if err != nil {
			return err
		}

		if err := r.send(entity, payload); err != nil {
			log.Printf("Failed to send %s event: %v", entity, err)
			failCount++
		} else {
			successCount++
		}

		if r.Interval > 0 && i < r.Count-1 {
			time.Sleep(r.Interval)
		}
	}

	log.Printf("Done: %d sent, %d failed", successCount, failCount)
	if failCount > 0 {
		return fmt.Errorf("%d of %d events failed", failCount, r.Count)
	}
	return nil
}

func (r *Runner) send(entity string, payload map[string]any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	resp, err := r.HTTPClient.Post(
		r.BaseURL+"/events/"+entity,
		"application/json",
		bytes.NewReader(body),
	)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}
