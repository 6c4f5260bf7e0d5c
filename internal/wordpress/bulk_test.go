// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package wordpress

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"pressroom/internal/models"
)

// TestNormalizeIDs verifies string coercion drops anything that does not
// parse as an integer.
func TestNormalizeIDs(t *testing.T) {
	got := NormalizeIDs([]string{"1", " 7 ", "abc", "", "12"})
	want := []int{1, 7, 12}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeIDs() = %v, want %v", got, want)
	}

	if got := NormalizeIDs(nil); got != nil {
		t.Errorf("NormalizeIDs(nil) = %v, want nil", got)
	}
}

// TestBulkFetchMap_ChunksAndDedupes verifies that a large ID set is split
// into include batches, with duplicates and non-positive IDs dropped first.
func TestBulkFetchMap_ChunksAndDedupes(t *testing.T) {
	var requests [][]int
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		include := NormalizeIDs(strings.Split(r.URL.Query().Get("include"), ","))
		requests = append(requests, include)

		if got, want := r.URL.Query().Get("per_page"), strconv.Itoa(len(include)); got != want {
			t.Errorf("per_page = %q, want %q", got, want)
		}

		terms := make([]models.Term, len(include))
		for i, id := range include {
			terms[i] = models.Term{ID: id, Name: fmt.Sprintf("term-%d", id), Slug: fmt.Sprintf("term-%d", id)}
		}
		json.NewEncoder(w).Encode(terms)
	}))

	// 250 unique IDs plus noise that must be filtered away.
	ids := []int{0, -3}
	for i := 1; i <= 250; i++ {
		ids = append(ids, i, i) // duplicated on purpose
	}

	result, err := bulkFetchMap(context.Background(), c, "tags", ids, tagFields,
		func(term models.Term) int { return term.ID })
	if err != nil {
		t.Fatalf("bulkFetchMap() returned unexpected error: %v", err)
	}

	if len(requests) != 3 {
		t.Fatalf("bulkFetchMap() issued %d requests, want 3", len(requests))
	}
	if len(requests[0]) != 100 || len(requests[1]) != 100 || len(requests[2]) != 50 {
		t.Errorf("chunk sizes = %d/%d/%d, want 100/100/50",
			len(requests[0]), len(requests[1]), len(requests[2]))
	}
	if len(result) != 250 {
		t.Errorf("bulkFetchMap() resolved %d IDs, want 250", len(result))
	}
	if got := result[137].Name; got != "term-137" {
		t.Errorf("result[137].Name = %q, want term-137", got)
	}
}

// TestBulkFetchMap_Empty verifies the empty set short-circuits without a
// network call.
func TestBulkFetchMap_Empty(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("unexpected upstream request for empty ID set")
	}))

	result, err := bulkFetchMap(context.Background(), c, "tags", []int{0, -1}, tagFields,
		func(term models.Term) int { return term.ID })
	if err != nil {
		t.Fatalf("bulkFetchMap() returned unexpected error: %v", err)
	}
	if len(result) != 0 {
		t.Errorf("bulkFetchMap() = %v, want empty map", result)
	}
}

// TestBulkFetchMap_FailedChunkAborts verifies a failed batch yields no
// partial results.
func TestBulkFetchMap_FailedChunkAborts(t *testing.T) {
	var calls int
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls > 1 {
			http.Error(w, "boom", http.StatusBadGateway)
			return
		}
		include := NormalizeIDs(strings.Split(r.URL.Query().Get("include"), ","))
		terms := make([]models.Term, len(include))
		for i, id := range include {
			terms[i] = models.Term{ID: id}
		}
		json.NewEncoder(w).Encode(terms)
	}))

	var ids []int
	for i := 1; i <= 150; i++ {
		ids = append(ids, i)
	}

	result, err := bulkFetchMap(context.Background(), c, "tags", ids, tagFields,
		func(term models.Term) int { return term.ID })
	if err == nil {
		t.Fatal("bulkFetchMap() error = nil, want upstream failure")
	}
	if result != nil {
		t.Errorf("bulkFetchMap() = %v, want nil on failure", result)
	}
}
