package application

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/carebridge/carebridge-api/internal/domain/entity"
	"github.com/carebridge/carebridge-api/internal/domain/repository"
)

// DoctorService serves the roster and the Elasticsearch-backed
// specialty search.
type DoctorService struct {
	Repo    repository.DoctorRepository
	ES      *elasticsearch.Client
	ESIndex string
	Logger  *logrus.Logger
}

func NewDoctorService(repo repository.DoctorRepository, es *elasticsearch.Client, esIndex string, logger *logrus.Logger) *DoctorService {
	return &DoctorService{Repo: repo, ES: es, ESIndex: esIndex, Logger: logger}
}

// List returns the full roster.
func (s *DoctorService) List(ctx context.Context) ([]entity.Doctor, error) {
	return s.Repo.List(ctx)
}

// Get returns a single doctor.
func (s *DoctorService) Get(ctx context.Context, id string) (*entity.Doctor, error) {
	d, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDoctorNotFound
		}
		return nil, err
	}
	return d, nil
}

// Reindex pushes the whole roster into the search index. Called on
// startup and after seeding; failures are logged and ignored because
// postgres remains the source of truth.
func (s *DoctorService) Reindex(ctx context.Context) error {
	if s.ES == nil || s.ESIndex == "" {
		return nil
	}
	doctors, err := s.Repo.List(ctx)
	if err != nil {
		return err
	}
	for i := range doctors {
		if err := s.indexDoctor(ctx, &doctors[i]); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("doctor_id", doctors[i].ID).Warn("es index failed")
		}
	}
	return nil
}

func (s *DoctorService) indexDoctor(ctx context.Context, d *entity.Doctor) error {
	doc := map[string]any{
		"id":        d.ID,
		"name":      d.Name,
		"specialty": d.Specialty,
		"email":     d.Email,
		"phone":     d.Phone,
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESIndex, DocumentID: d.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("doctor_id", d.ID).Warn("es index response error")
	}
	return nil
}

// Search performs a multi_match query over name and specialty. If the
// search index is not configured it degrades to an empty result.
func (s *DoctorService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"name^2", "specialty"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
