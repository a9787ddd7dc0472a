package http

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"pokedex-service/internal/domain"
	"pokedex-service/internal/testutil"
)

type teamState struct {
	Team    domain.Team `json:"team"`
	CanSave bool        `json:"can_save"`
}

func addMember(t *testing.T, router http.Handler, id int, name string) teamState {
	t.Helper()
	payload, _ := json.Marshal(testutil.SampleSummary(id, name))
	rr := testutil.Serve(router, http.MethodPost, "/team/members", strings.NewReader(string(payload)))
	testutil.AssertStatus(t, rr, http.StatusOK)
	var state teamState
	testutil.DecodeJSON(t, rr, &state)
	return state
}

func TestTeamStartsEmpty(t *testing.T) {
	router, _ := newTestRouter(t)
	rr := testutil.Serve(router, http.MethodGet, "/team", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var state teamState
	testutil.DecodeJSON(t, rr, &state)
	if len(state.Team.Members) != 0 || state.CanSave {
		t.Fatalf("expected an empty unsavable team, got %+v", state)
	}
	if state.Team.Name != "New Team" {
		t.Fatalf("expected default team name, got %q", state.Team.Name)
	}
}

func TestAddMemberCapsAtSixAndSkipsDuplicates(t *testing.T) {
	router, _ := newTestRouter(t)

	names := []string{"bulbasaur", "ivysaur", "venusaur", "charmander", "squirtle", "pikachu"}
	var state teamState
	for i, name := range names {
		state = addMember(t, router, i+1, name)
	}
	if len(state.Team.Members) != 6 {
		t.Fatalf("expected a full team, got %d members", len(state.Team.Members))
	}

	// Seventh member and duplicate both no-op with a 200.
	state = addMember(t, router, 152, "chikorita")
	if len(state.Team.Members) != 6 {
		t.Fatalf("expected the seventh add to no-op, got %d members", len(state.Team.Members))
	}
	state = addMember(t, router, 1, "bulbasaur")
	if len(state.Team.Members) != 6 {
		t.Fatalf("expected the duplicate add to no-op, got %d members", len(state.Team.Members))
	}
}

func TestAddMemberRejectsEmptyPayload(t *testing.T) {
	router, _ := newTestRouter(t)
	rr := testutil.Serve(router, http.MethodPost, "/team/members", strings.NewReader(`{}`))
	testutil.AssertStatus(t, rr, http.StatusBadRequest)
}

func TestRemoveMemberByIDAndName(t *testing.T) {
	router, _ := newTestRouter(t)
	addMember(t, router, 25, "pikachu")
	addMember(t, router, 1, "bulbasaur")

	rr := testutil.Serve(router, http.MethodDelete, "/team/members/25", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var state teamState
	testutil.DecodeJSON(t, rr, &state)
	if len(state.Team.Members) != 1 || state.Team.Members[0].Name != "bulbasaur" {
		t.Fatalf("expected only bulbasaur left, got %+v", state.Team.Members)
	}

	// Removing an absent member is a silent no-op.
	rr = testutil.Serve(router, http.MethodDelete, "/team/members/pikachu", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	testutil.DecodeJSON(t, rr, &state)
	if len(state.Team.Members) != 1 {
		t.Fatalf("expected the absent remove to no-op, got %+v", state.Team.Members)
	}
}

func TestSaveRequiresMembers(t *testing.T) {
	router, _ := newTestRouter(t)
	rr := testutil.Serve(router, http.MethodPost, "/team/save", nil)
	testutil.AssertStatus(t, rr, http.StatusBadRequest)
}

func TestSaveRenameAndListFlow(t *testing.T) {
	router, _ := newTestRouter(t)
	addMember(t, router, 25, "pikachu")

	rr := testutil.Serve(router, http.MethodPut, "/team/name", strings.NewReader(`{"name":"Thunder Squad"}`))
	testutil.AssertStatus(t, rr, http.StatusOK)

	rr = testutil.Serve(router, http.MethodPost, "/team/save", nil)
	testutil.AssertStatus(t, rr, http.StatusCreated)
	var saved domain.Team
	testutil.DecodeJSON(t, rr, &saved)
	if saved.Name != "Thunder Squad" {
		t.Fatalf("expected saved name, got %q", saved.Name)
	}

	rr = testutil.Serve(router, http.MethodGet, "/teams", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var listed []domain.Team
	testutil.DecodeJSON(t, rr, &listed)
	if len(listed) != 1 || listed[0].ID != saved.ID {
		t.Fatalf("expected the saved team in the collection, got %+v", listed)
	}

	rr = testutil.Serve(router, http.MethodGet, "/teams/"+saved.ID, nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	rr = testutil.Serve(router, http.MethodPost, "/teams/"+saved.ID+"/edit", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var editing domain.Team
	testutil.DecodeJSON(t, rr, &editing)
	if editing.ID != saved.ID {
		t.Fatalf("expected to edit the saved team, got %+v", editing)
	}

	rr = testutil.Serve(router, http.MethodDelete, "/teams/"+saved.ID, nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	rr = testutil.Serve(router, http.MethodDelete, "/teams/"+saved.ID, nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}

func TestResetDiscardsEdit(t *testing.T) {
	router, _ := newTestRouter(t)
	addMember(t, router, 25, "pikachu")

	rr := testutil.Serve(router, http.MethodPost, "/team/reset", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var state teamState
	testutil.DecodeJSON(t, rr, &state)
	if len(state.Team.Members) != 0 {
		t.Fatalf("expected a fresh team after reset, got %+v", state.Team)
	}
}

func TestExportSetsDownloadHeaders(t *testing.T) {
	router, teamsSvc := newTestRouter(t)
	teamsSvc.AddMember(testutil.SampleSummary(25, "pikachu"))
	if _, err := teamsSvc.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}

	rr := testutil.Serve(router, http.MethodGet, "/teams/export", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	disposition := rr.Header().Get("Content-Disposition")
	if !strings.Contains(disposition, "teams-") || !strings.Contains(disposition, ".json") {
		t.Fatalf("expected a timestamped attachment, got %q", disposition)
	}

	var exported []domain.Team
	testutil.DecodeJSON(t, rr, &exported)
	if len(exported) != 1 {
		t.Fatalf("expected 1 exported team, got %d", len(exported))
	}
}

func TestExportToFileReturnsPath(t *testing.T) {
	router, _ := newTestRouter(t)
	rr := testutil.Serve(router, http.MethodPost, "/teams/export", nil)
	testutil.AssertStatus(t, rr, http.StatusCreated)
	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["path"] == "" {
		t.Fatalf("expected an export path, got %+v", resp)
	}
}

func TestImportRejectsNonArray(t *testing.T) {
	router, teamsSvc := newTestRouter(t)
	teamsSvc.AddMember(testutil.SampleSummary(25, "pikachu"))
	if _, err := teamsSvc.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}

	rr := testutil.Serve(router, http.MethodPost, "/teams/import", strings.NewReader(`{"no":"array"}`))
	testutil.AssertStatus(t, rr, http.StatusBadRequest)

	if got := len(teamsSvc.Teams()); got != 1 {
		t.Fatalf("expected collection untouched, got %d teams", got)
	}
}

func TestImportReplacesCollection(t *testing.T) {
	router, teamsSvc := newTestRouter(t)
	payload := `[{"id":"abc","name":"Kanto","members":[{"id":25,"name":"pikachu"}]},{"name":12}]`

	rr := testutil.Serve(router, http.MethodPost, "/teams/import", strings.NewReader(payload))
	testutil.AssertStatus(t, rr, http.StatusOK)

	var imported []domain.Team
	testutil.DecodeJSON(t, rr, &imported)
	if len(imported) != 2 {
		t.Fatalf("expected 2 imported teams, got %d", len(imported))
	}
	if imported[1].Name != "Imported Team" {
		t.Fatalf("expected normalized name, got %q", imported[1].Name)
	}
	if got := len(teamsSvc.Teams()); got != 2 {
		t.Fatalf("expected collection replaced, got %d teams", got)
	}
}
