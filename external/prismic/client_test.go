package prismic

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestBuildPredicates(t *testing.T) {
	t.Parallel()

	got := buildPredicates("match", "my.match.tournament", "tour-1")
	want := `[[at(document.type,"match")][at(my.match.tournament,"tour-1")]]`
	if got != want {
		t.Fatalf("unexpected predicates:\n got=%s\nwant=%s", got, want)
	}

	got = buildPredicates("tournament", "", "")
	if got != `[[at(document.type,"tournament")]]` {
		t.Fatalf("unexpected predicates: %s", got)
	}
}

func TestFetchMatchesPaginates(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/":
			fmt.Fprint(w, `{"refs":[{"ref":"draft","isMasterRef":false},{"ref":"master-abc","isMasterRef":true}]}`)
		case "/documents/search":
			if r.URL.Query().Get("ref") != "master-abc" {
				t.Errorf("search must use the master ref, got %q", r.URL.Query().Get("ref"))
			}
			switch r.URL.Query().Get("page") {
			case "1":
				fmt.Fprint(w, `{"page":1,"total_pages":2,"results":[
					{"id":"m1","uid":"match-1","type":"match","data":{
						"feed_ref":"g101","stage":"Group","group":"Group 1","match_number":1,
						"home_team":"North FC","away_team":"South FC","kickoff":"2026-05-28T17:30:00Z"}}]}`)
			case "2":
				fmt.Fprint(w, `{"page":2,"total_pages":2,"results":[
					{"id":"m2","uid":"match-25","type":"match","data":{
						"stage":"Final","match_number":25,
						"home_team":"Semi-Final 1 Winner","away_team":"Semi-Final 2 Winner",
						"kickoff":"2026-05-31T16:00:00Z"}}]}`)
			default:
				t.Errorf("unexpected page %q", r.URL.Query().Get("page"))
			}
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	client := NewClient(ClientConfig{RepositoryURL: server.URL})
	docs, err := client.FetchMatches(context.Background(), "tour-1")
	if err != nil {
		t.Fatalf("FetchMatches: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected both pages merged, got %d docs", len(docs))
	}
	if docs[0].ID != "match-1" || docs[0].FeedRef != "g101" {
		t.Fatalf("unexpected first doc: %+v", docs[0])
	}
	if docs[1].HomeName != "Semi-Final 1 Winner" {
		t.Fatalf("placeholder names must pass through untouched, got %q", docs[1].HomeName)
	}
	if docs[1].FeedRef != "" {
		t.Fatalf("missing feed ref must stay empty, got %q", docs[1].FeedRef)
	}
}

func TestMapTournamentDocs(t *testing.T) {
	t.Parallel()

	docs := []document{
		{
			ID:  "t1",
			UID: "summer-sevens-2026",
			Data: documentData{
				Title:             []richTextSpan{{Text: "Summer "}, {Text: "Sevens"}},
				Season:            "2026",
				Groups:            []groupItem{{GroupName: "Group 1"}, {GroupName: ""}, {GroupName: "Group 2"}},
				FeedCompetitionID: "c55",
				FeedSeasonID:      "s2026",
				IsCurrent:         true,
			},
		},
		{},
	}

	mapped := mapTournamentDocs(docs)
	if len(mapped) != 1 {
		t.Fatalf("docs without identity must be dropped, got %d", len(mapped))
	}
	if mapped[0].ID != "summer-sevens-2026" || mapped[0].Title != "Summer Sevens" {
		t.Fatalf("unexpected mapping: %+v", mapped[0])
	}
	if len(mapped[0].Groups) != 2 {
		t.Fatalf("blank group names must be dropped, got %v", mapped[0].Groups)
	}
}
