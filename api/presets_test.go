package api_test

import (
	"net/http"
	"testing"

	"gesturecraft/preset"
)

type presetsResp struct {
	Presets        []preset.Preset `json:"presets"`
	ActivePresetID string          `json:"activePresetId"`
}

func TestGetPresetsSeeded(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()
	sid := login(t, srv)

	var got presetsResp
	resp := do(t, http.MethodGet, srv.URL+"/api/sessions/"+sid+"/presets", "", &got)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if len(got.Presets) != 1 || got.Presets[0].Name != "Home" {
		t.Fatalf("expected seeded 'Home' preset, got %+v", got.Presets)
	}
	if got.ActivePresetID != got.Presets[0].ID {
		t.Fatalf("expected Home to be active, got %q", got.ActivePresetID)
	}
}

func TestCreatePreset(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()
	sid := login(t, srv)
	base := srv.URL + "/api/sessions/" + sid

	var p preset.Preset
	resp := do(t, http.MethodPost, base+"/presets", `{"name":"Work","description":"Office"}`, &p)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	if p.ID == "" || p.Name != "Work" {
		t.Fatalf("unexpected preset: %+v", p)
	}

	var got presetsResp
	do(t, http.MethodGet, base+"/presets", "", &got)
	if got.ActivePresetID != p.ID {
		t.Fatalf("new preset should be active")
	}
}

func TestCreatePresetDuplicateCaseInsensitive(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()
	sid := login(t, srv)

	resp := do(t, http.MethodPost, srv.URL+"/api/sessions/"+sid+"/presets", `{"name":"home"}`, nil)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.StatusCode)
	}
}

func TestCreatePresetBadInput(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()
	sid := login(t, srv)
	url := srv.URL + "/api/sessions/" + sid + "/presets"

	if resp := do(t, http.MethodPost, url, "not-json", nil); resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad JSON, got %d", resp.StatusCode)
	}
	if resp := do(t, http.MethodPost, url, `{"name":"  "}`, nil); resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for blank name, got %d", resp.StatusCode)
	}
}

func TestUpdatePreset(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()
	sid := login(t, srv)
	base := srv.URL + "/api/sessions/" + sid

	var work preset.Preset
	do(t, http.MethodPost, base+"/presets", `{"name":"Work"}`, &work)

	var p preset.Preset
	resp := do(t, http.MethodPatch, base+"/presets/"+work.ID, `{"description":"Office"}`, &p)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if p.Name != "Work" || p.Description != "Office" {
		t.Fatalf("unexpected preset: %+v", p)
	}

	resp = do(t, http.MethodPatch, base+"/presets/"+work.ID, `{"name":"HOME"}`, nil)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.StatusCode)
	}
	resp = do(t, http.MethodPatch, base+"/presets/missing", `{"name":"X"}`, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestSelectPreset(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()
	sid := login(t, srv)
	base := srv.URL + "/api/sessions/" + sid

	var before presetsResp
	do(t, http.MethodGet, base+"/presets", "", &before)
	home := before.Presets[0]
	do(t, http.MethodPost, base+"/presets", `{"name":"Work"}`, nil)

	resp := do(t, http.MethodPost, base+"/presets/"+home.ID+"/select", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var after presetsResp
	do(t, http.MethodGet, base+"/presets", "", &after)
	if after.ActivePresetID != home.ID {
		t.Fatalf("expected Home active after select")
	}

	resp = do(t, http.MethodPost, base+"/presets/missing/select", "", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestDeletePreset(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()
	sid := login(t, srv)
	base := srv.URL + "/api/sessions/" + sid

	var got presetsResp
	do(t, http.MethodGet, base+"/presets", "", &got)
	home := got.Presets[0]

	resp := do(t, http.MethodDelete, base+"/presets/"+home.ID, "", nil)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("deleting the last preset: expected 409, got %d", resp.StatusCode)
	}

	var work preset.Preset
	do(t, http.MethodPost, base+"/presets", `{"name":"Work"}`, &work)
	resp = do(t, http.MethodDelete, base+"/presets/"+work.ID, "", nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.StatusCode)
	}
	do(t, http.MethodGet, base+"/presets", "", &got)
	if len(got.Presets) != 1 || got.ActivePresetID != home.ID {
		t.Fatalf("expected only Home left and active, got %+v", got)
	}
}
