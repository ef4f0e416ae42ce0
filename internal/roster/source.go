package roster

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/org-directory/internal/domain"
	"github.com/spec-kit/org-directory/internal/repository"
)

// Source yields a raw roster document.
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]byte, error)
}

// FileSource reads the roster from a local file.
type FileSource struct {
	Path string
}

func (s FileSource) Name() string { return "file:" + s.Path }

func (s FileSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}
	return data, nil
}

// HTTPSource fetches the roster over HTTP, bypassing caches.
type HTTPSource struct {
	URL     string
	Timeout time.Duration
}

func (s HTTPSource) Name() string { return "url:" + s.URL }

func (s HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	timeout := s.Timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); timeout <= 0 || remaining < timeout {
			timeout = remaining
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	agent := fiber.Get(s.URL)
	agent.Set(fiber.HeaderCacheControl, "no-store")
	agent.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
	if timeout > 0 {
		agent.Timeout(timeout)
	}

	// The agent takes no context; only the deadline reaches it, as the timeout.
	// A cancellation during the request is reported once it returns.
	code, body, errs := agent.Bytes()
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("fetch roster: %w", err)
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("fetch roster: %w", errors.Join(errs...))
	}
	if code < http.StatusOK || code >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("HTTP %d %s", code, http.StatusText(code))
	}
	return body, nil
}

// PostgresSource serializes the employees table into the flat-list shape.
type PostgresSource struct {
	Repo repository.EmployeeRepository
}

func (s PostgresSource) Name() string { return "postgres:employees" }

func (s PostgresSource) Fetch(ctx context.Context) ([]byte, error) {
	employees, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return EncodeFlat(employees)
}

// Entry is the JSON shape of one employee in a flat roster document.
type Entry struct {
	IID             string `json:"iid,omitempty"`
	Name            string `json:"name"`
	Organization    string `json:"organization"`
	OrganizationKey string `json:"organizationKey,omitempty"`
	Title           string `json:"title"`
	Phone           string `json:"phone"`
	MobilePhone     string `json:"mobilePhone,omitempty"`
}

// EncodeFlat renders employees as a flat JSON array.
func EncodeFlat(employees []domain.Employee) ([]byte, error) {
	entries := make([]Entry, 0, len(employees))
	for _, e := range employees {
		entries = append(entries, Entry{
			IID:             e.ID,
			Name:            e.Name,
			Organization:    e.Organization,
			OrganizationKey: e.OrganizationKey,
			Title:           e.Title,
			Phone:           e.Phone,
			MobilePhone:     e.MobilePhone,
		})
	}
	return json.Marshal(entries)
}
