// api/ledger/repository.go
package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"

	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/model"
)

const indexName = "activity-logs"

type Repository interface {
	Record(ctx context.Context, entry Entry) error
	CountSince(ctx context.Context, userID string, action model.Action, since time.Time) (int, error)
	Recent(ctx context.Context, userID string, actions []model.Action, limit int) ([]Entry, error)
	ListSince(ctx context.Context, userID string, actions []model.Action, since time.Time) ([]Entry, error)
	Query(ctx context.Context, filter QueryFilter) ([]Entry, int, error)
}

type ElasticsearchRepository struct {
	esClient *elasticsearch.Client
}

// NewElasticsearchRepository creates a new repository with a given Elasticsearch client URL.
func NewElasticsearchRepository(esURL string) (*ElasticsearchRepository, error) {
	cfg := elasticsearch.Config{
		Addresses: []string{esURL},
	}
	esClient, err := elasticsearch.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	return &ElasticsearchRepository{esClient: esClient}, nil
}

// Record appends one activity entry to Elasticsearch.
func (r *ElasticsearchRepository) Record(ctx context.Context, entry Entry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	req := esapi.IndexRequest{
		Index:      indexName,
		DocumentID: uuid.New().String(),
		Body:       strings.NewReader(string(data)),
		Refresh:    "true",
	}

	res, err := req.Do(ctx, r.esClient)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error indexing document: %s", res.String())
	}

	return nil
}

// CountSince counts one subject's entries for an action with timestamp >= since.
func (r *ElasticsearchRepository) CountSince(ctx context.Context, userID string, action model.Action, since time.Time) (int, error) {
	query := map[string]interface{}{
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"must": []interface{}{
					map[string]interface{}{
						"match": map[string]interface{}{
							"user_id": userID,
						},
					},
					map[string]interface{}{
						"match": map[string]interface{}{
							"action": string(action),
						},
					},
					map[string]interface{}{
						"range": map[string]interface{}{
							"timestamp": map[string]interface{}{
								"gte": since.Format(time.RFC3339),
							},
						},
					},
				},
			},
		},
	}

	var buf strings.Builder
	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		return 0, err
	}

	res, err := r.esClient.Count(
		r.esClient.Count.WithContext(ctx),
		r.esClient.Count.WithIndex(indexName),
		r.esClient.Count.WithBody(strings.NewReader(buf.String())),
	)
	if err != nil {
		return 0, err
	}
	defer res.Body.Close()

	if res.IsError() {
		return 0, fmt.Errorf("error counting documents: %s", res.String())
	}

	var rmap map[string]interface{}
	if err := json.NewDecoder(res.Body).Decode(&rmap); err != nil {
		return 0, err
	}

	count, ok := rmap["count"].(float64)
	if !ok {
		return 0, fmt.Errorf("unexpected count response: %v", rmap)
	}

	return int(count), nil
}

// Recent returns the subject's newest entries for the given actions.
func (r *ElasticsearchRepository) Recent(ctx context.Context, userID string, actions []model.Action, limit int) ([]Entry, error) {
	actionStrings := make([]string, len(actions))
	for i, a := range actions {
		actionStrings[i] = string(a)
	}

	query := map[string]interface{}{
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"must": []interface{}{
					map[string]interface{}{
						"match": map[string]interface{}{
							"user_id": userID,
						},
					},
					map[string]interface{}{
						"terms": map[string]interface{}{
							"action.keyword": actionStrings,
						},
					},
				},
			},
		},
		"sort": []interface{}{
			map[string]interface{}{
				"timestamp": map[string]interface{}{"order": "desc"},
			},
		},
		"size": limit,
	}

	var buf strings.Builder
	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		return nil, err
	}

	return r.search(ctx, buf.String(), nil)
}

// ListSince returns the subject's entries for the given actions with
// timestamp >= since, newest first.
func (r *ElasticsearchRepository) ListSince(ctx context.Context, userID string, actions []model.Action, since time.Time) ([]Entry, error) {
	actionStrings := make([]string, len(actions))
	for i, a := range actions {
		actionStrings[i] = string(a)
	}

	query := map[string]interface{}{
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"must": []interface{}{
					map[string]interface{}{
						"match": map[string]interface{}{
							"user_id": userID,
						},
					},
					map[string]interface{}{
						"terms": map[string]interface{}{
							"action.keyword": actionStrings,
						},
					},
					map[string]interface{}{
						"range": map[string]interface{}{
							"timestamp": map[string]interface{}{
								"gte": since.Format(time.RFC3339),
							},
						},
					},
				},
			},
		},
		"sort": []interface{}{
			map[string]interface{}{
				"timestamp": map[string]interface{}{"order": "desc"},
			},
		},
		"size": 10000,
	}

	var buf strings.Builder
	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		return nil, err
	}

	return r.search(ctx, buf.String(), nil)
}

// Query lists entries for the admin log console. Returns the page and the
// total number of matches so callers can paginate.
func (r *ElasticsearchRepository) Query(ctx context.Context, filter QueryFilter) ([]Entry, int, error) {
	must := []interface{}{}

	if filter.Action != nil {
		must = append(must, map[string]interface{}{
			"match": map[string]interface{}{
				"action": string(*filter.Action),
			},
		})
	}

	if filter.From != nil || filter.To != nil {
		timeRange := map[string]interface{}{}
		if filter.From != nil {
			timeRange["gte"] = filter.From.Format(time.RFC3339)
		}
		if filter.To != nil {
			timeRange["lte"] = filter.To.Format(time.RFC3339)
		}
		must = append(must, map[string]interface{}{
			"range": map[string]interface{}{
				"timestamp": timeRange,
			},
		})
	}

	if len(must) == 0 {
		must = append(must, map[string]interface{}{
			"match_all": map[string]interface{}{},
		})
	}

	query := map[string]interface{}{
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"must": must,
			},
		},
		"sort": []interface{}{
			map[string]interface{}{
				"timestamp": map[string]interface{}{"order": "desc"},
			},
		},
		"from":             filter.Offset,
		"size":             filter.Limit,
		"track_total_hits": true,
	}

	var buf strings.Builder
	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		return nil, 0, err
	}

	var total int
	entries, err := r.search(ctx, buf.String(), &total)
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

func (r *ElasticsearchRepository) search(ctx context.Context, body string, total *int) ([]Entry, error) {
	res, err := r.esClient.Search(
		r.esClient.Search.WithContext(ctx),
		r.esClient.Search.WithIndex(indexName),
		r.esClient.Search.WithBody(strings.NewReader(body)),
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("error searching documents: %s", res.String())
	}

	var rmap map[string]interface{}
	if err := json.NewDecoder(res.Body).Decode(&rmap); err != nil {
		return nil, err
	}

	hitsWrapper := rmap["hits"].(map[string]interface{})
	if total != nil {
		if totalMap, ok := hitsWrapper["total"].(map[string]interface{}); ok {
			*total = int(totalMap["value"].(float64))
		}
	}

	hits := hitsWrapper["hits"].([]interface{})
	entries := make([]Entry, len(hits))
	for i, hit := range hits {
		source := hit.(map[string]interface{})["_source"]
		data, _ := json.Marshal(source)
		json.Unmarshal(data, &entries[i])
	}

	return entries, nil
}
