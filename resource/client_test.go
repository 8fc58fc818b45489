package resource

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"sync/atomic"
	"testing"

	"github.com/ledgerpay/ledgerpay-go/apierrors"
	"github.com/ledgerpay/ledgerpay-go/transport"
)

type widget struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Kind string `json:"kind"`
}

type createWidgetParams struct {
	Name string `json:"name" validate:"required"`
	Kind string `json:"kind" validate:"required"`
}

type updateWidgetParams struct {
	Name string `json:"name,omitempty" validate:"omitempty,min=1"`
}

// countingServer tracks how many requests actually reached the handler.
func countingServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *atomic.Int64) {
	t.Helper()
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func newWidgets(t *testing.T, endpoint string) *Client[widget] {
	t.Helper()
	tr, err := transport.New(transport.Config{Endpoint: endpoint, AuthToken: "sk_test"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return NewClient[widget](tr, "widgets")
}

func TestCreate(t *testing.T) {
	srv, calls := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/widgets" {
			t.Errorf("expected /widgets, got %s", r.URL.Path)
		}
		if r.Header.Get("Idempotency-Key") == "" {
			t.Error("expected a generated Idempotency-Key header")
		}
		var params createWidgetParams
		json.NewDecoder(r.Body).Decode(&params)
		w.WriteHeader(201)
		json.NewEncoder(w).Encode(widget{ID: "wid_1", Name: params.Name, Kind: params.Kind})
	})

	c := newWidgets(t, srv.URL)
	got, err := c.Create(context.Background(), createWidgetParams{Name: "alpha", Kind: "basic"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := widget{ID: "wid_1", Name: "alpha", Kind: "basic"}
	if *got != want {
		t.Errorf("expected %+v, got %+v", want, *got)
	}
	if calls.Load() != 1 {
		t.Errorf("expected exactly one HTTP call, got %d", calls.Load())
	}
}

func TestCreate_MissingRequiredFields(t *testing.T) {
	srv, calls := countingServer(t, func(w http.ResponseWriter, r *http.Request) {})

	c := newWidgets(t, srv.URL)
	_, err := c.Create(context.Background(), createWidgetParams{})
	if !apierrors.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	// First missing field in declaration order comes first.
	fields := apierrors.Fields(err)
	if len(fields) == 0 || fields[0] != "name" {
		t.Errorf("expected name first, got %v", fields)
	}
	if calls.Load() != 0 {
		t.Errorf("expected zero HTTP calls, got %d", calls.Load())
	}
}

func TestCreate_IdempotencyKeyOverride(t *testing.T) {
	srv, _ := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Idempotency-Key"); got != "fixed_key" {
			t.Errorf("expected fixed_key, got %s", got)
		}
		json.NewEncoder(w).Encode(widget{ID: "wid_1"})
	})

	c := newWidgets(t, srv.URL)
	_, err := c.Create(context.Background(),
		createWidgetParams{Name: "a", Kind: "b"},
		WithIdempotencyKey("fixed_key"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGet(t *testing.T) {
	srv, _ := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/widgets/wid_42" {
			t.Errorf("expected /widgets/wid_42, got %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(widget{ID: "wid_42", Name: "answer"})
	})

	c := newWidgets(t, srv.URL)
	got, err := c.Get(context.Background(), "wid_42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "wid_42" {
		t.Errorf("expected wid_42, got %s", got.ID)
	}
}

func TestGet_EmptyID(t *testing.T) {
	srv, calls := countingServer(t, func(w http.ResponseWriter, r *http.Request) {})

	c := newWidgets(t, srv.URL)
	_, err := c.Get(context.Background(), "")
	if !apierrors.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if got := apierrors.Fields(err); !reflect.DeepEqual(got, []string{"id"}) {
		t.Errorf("expected field list [id], got %v", got)
	}
	if calls.Load() != 0 {
		t.Errorf("expected zero HTTP calls, got %d", calls.Load())
	}
}

func TestGet_Idempotent(t *testing.T) {
	srv, _ := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(widget{ID: "wid_1", Name: "stable", Kind: "basic"})
	})

	c := newWidgets(t, srv.URL)
	first, err := c.Get(context.Background(), "wid_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := c.Get(context.Background(), "wid_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected structurally equal results, got %+v vs %+v", first, second)
	}
}

func TestList(t *testing.T) {
	total := int64(3)
	srv, _ := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("limit"); got != "2" {
			t.Errorf("expected limit=2, got %q", got)
		}
		json.NewEncoder(w).Encode(List[widget]{
			Items:      []widget{{ID: "wid_1"}, {ID: "wid_2"}},
			HasMore:    true,
			TotalCount: &total,
		})
	})

	c := newWidgets(t, srv.URL)
	got, err := c.List(context.Background(), map[string]string{"limit": "2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Items) != 2 || got.Items[0].ID != "wid_1" || got.Items[1].ID != "wid_2" {
		t.Errorf("expected ordered items wid_1, wid_2, got %+v", got.Items)
	}
	if !got.HasMore {
		t.Error("expected HasMore=true")
	}
	if got.TotalCount == nil || *got.TotalCount != 3 {
		t.Errorf("expected TotalCount=3, got %v", got.TotalCount)
	}
}

func TestList_NoPaginationMetadata(t *testing.T) {
	srv, _ := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[{"id":"wid_1"}]}`))
	})

	c := newWidgets(t, srv.URL)
	got, err := c.List(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.TotalCount != nil {
		t.Errorf("expected no total count, got %v", *got.TotalCount)
	}
	if got.HasMore {
		t.Error("expected HasMore=false when absent")
	}
}

func TestUpdate(t *testing.T) {
	srv, _ := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Errorf("expected PATCH, got %s", r.Method)
		}
		if r.URL.Path != "/widgets/wid_1" {
			t.Errorf("expected /widgets/wid_1, got %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(widget{ID: "wid_1", Name: "renamed"})
	})

	c := newWidgets(t, srv.URL)
	got, err := c.Update(context.Background(), "wid_1", updateWidgetParams{Name: "renamed"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "renamed" {
		t.Errorf("expected renamed, got %s", got.Name)
	}
}

func TestUpdate_EmptyID(t *testing.T) {
	srv, calls := countingServer(t, func(w http.ResponseWriter, r *http.Request) {})

	c := newWidgets(t, srv.URL)
	_, err := c.Update(context.Background(), "", updateWidgetParams{Name: "x"})
	if got := apierrors.Fields(err); !reflect.DeepEqual(got, []string{"id"}) {
		t.Errorf("expected field list [id], got %v", got)
	}
	if calls.Load() != 0 {
		t.Errorf("expected zero HTTP calls, got %d", calls.Load())
	}
}

func TestDelete(t *testing.T) {
	srv, _ := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("expected DELETE, got %s", r.Method)
		}
		w.WriteHeader(http.StatusNoContent)
	})

	c := newWidgets(t, srv.URL)
	if err := c.Delete(context.Background(), "wid_1"); err != nil {
		t.Fatalf("expected clean resolve on 204, got %v", err)
	}
}

func TestDelete_EmptyID(t *testing.T) {
	srv, calls := countingServer(t, func(w http.ResponseWriter, r *http.Request) {})

	c := newWidgets(t, srv.URL)
	err := c.Delete(context.Background(), "")
	if got := apierrors.Fields(err); !reflect.DeepEqual(got, []string{"id"}) {
		t.Errorf("expected field list [id], got %v", got)
	}
	if calls.Load() != 0 {
		t.Errorf("expected zero HTTP calls, got %d", calls.Load())
	}
}

func TestGetSub(t *testing.T) {
	srv, _ := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/widgets/primary" {
			t.Errorf("expected /widgets/primary, got %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(widget{ID: "wid_9"})
	})

	c := newWidgets(t, srv.URL)
	got, err := c.GetSub(context.Background(), "primary")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "wid_9" {
		t.Errorf("expected wid_9, got %s", got.ID)
	}
}

func TestPostSub(t *testing.T) {
	srv, _ := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/widgets/wid_1/activate" {
			t.Errorf("expected /widgets/wid_1/activate, got %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(widget{ID: "wid_1", Kind: "active"})
	})

	c := newWidgets(t, srv.URL)
	got, err := c.PostSub(context.Background(), "wid_1", "activate", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Kind != "active" {
		t.Errorf("expected active, got %s", got.Kind)
	}
}

func TestPostSub_EmptyID(t *testing.T) {
	srv, calls := countingServer(t, func(w http.ResponseWriter, r *http.Request) {})

	c := newWidgets(t, srv.URL)
	_, err := c.PostSub(context.Background(), "", "activate", nil)
	if !apierrors.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if calls.Load() != 0 {
		t.Errorf("expected zero HTTP calls, got %d", calls.Load())
	}
}

func TestNestedCollectionPath(t *testing.T) {
	srv, _ := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/charges/chg_1/refunds/ref_1" {
			t.Errorf("expected nested path, got %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(widget{ID: "ref_1"})
	})

	tr, err := transport.New(transport.Config{Endpoint: srv.URL, AuthToken: "sk_test"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	refunds := NewClient[widget](tr, "charges", "chg_1", "refunds")
	if _, err := refunds.Get(context.Background(), "ref_1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGet_MalformedSuccessBody(t *testing.T) {
	srv, _ := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("not json at all"))
	})

	c := newWidgets(t, srv.URL)
	_, err := c.Get(context.Background(), "wid_1")
	if !apierrors.IsRequest(err) {
		t.Fatalf("expected request error for undecodable 2xx body, got %v", err)
	}
	if apierrors.IsValidation(err) || apierrors.IsNetwork(err) {
		t.Error("decode failures must classify as exactly one kind")
	}

	var apiErr *apierrors.Error
	if !errors.As(err, &apiErr) {
		t.Fatal("expected *apierrors.Error")
	}
	if apiErr.StatusCode != 200 {
		t.Errorf("expected status 200, got %d", apiErr.StatusCode)
	}
	if apiErr.Response.Errors[0].Code != apierrors.CodeInvalidResponse {
		t.Errorf("expected invalid_response, got %q", apiErr.Response.Errors[0].Code)
	}
	if string(apiErr.Raw) != "not json at all" {
		t.Errorf("raw body should be preserved, got %q", apiErr.Raw)
	}
}

func TestRequestErrorPassthrough(t *testing.T) {
	srv, _ := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"errors":[{"code":"insufficient_funds","message":"card declined"}]}`))
	})

	c := newWidgets(t, srv.URL)
	_, err := c.Get(context.Background(), "wid_1")
	if !apierrors.IsRequest(err) {
		t.Fatalf("expected request error, got %v", err)
	}
}
