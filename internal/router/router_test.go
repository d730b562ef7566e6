package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"animal-shelter-api/internal/router"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(router.NewRouter(router.Options{BcryptCost: bcrypt.MinCost}))
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_AuthFlow(t *testing.T) {
	ts := newServer(t)

	// 1) Signup devuelve token
	token := signup(t, ts.URL, "ana@shelter.org", "shelterstaff")
	if len(token) != 40 {
		t.Fatalf("expected 40 char token, got %q", token)
	}

	// 2) Login devuelve el mismo token
	{
		st, body := doReq(t, ts.URL, "POST", "/login", "", map[string]any{
			"email": "ana@shelter.org", "password": "supersecret",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 login, got %d body=%s", st, string(body))
		}
		var out struct {
			Message string `json:"message"`
			Token   string `json:"token"`
		}
		mustDecode(t, body, &out)
		if out.Token != token {
			t.Fatalf("expected same token on login, got %q want %q", out.Token, token)
		}
		if out.Message != "Logged in successfully." {
			t.Fatalf("unexpected message %q", out.Message)
		}
	}

	// 3) Password incorrecto y email desconocido => mismo 401
	for _, email := range []string{"ana@shelter.org", "nobody@shelter.org"} {
		st, body := doReq(t, ts.URL, "POST", "/login", "", map[string]any{
			"email": email, "password": "wrong-password",
		})
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 for %s, got %d", email, st)
		}
		if !strings.Contains(string(body), "Invalid credentials.") {
			t.Fatalf("unexpected body %s", string(body))
		}
	}

	// 4) Validaciones de signup
	cases := []struct {
		name  string
		body  map[string]any
		field string
	}{
		{"short password", map[string]any{"email": "b@shelter.org", "name": "B", "password": "short"}, "password"},
		{"duplicate email", map[string]any{"email": "ana@shelter.org", "name": "Ana", "password": "supersecret"}, "email"},
		{"admin signup", map[string]any{"email": "c@shelter.org", "name": "C", "password": "supersecret", "usertype": "admin"}, "usertype"},
		{"bad email", map[string]any{"email": "not-an-email", "name": "D", "password": "supersecret"}, "email"},
	}
	for _, tc := range cases {
		st, body := doReq(t, ts.URL, "POST", "/signup", "", tc.body)
		if st != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d body=%s", tc.name, st, string(body))
		}
		var errs map[string][]string
		mustDecode(t, body, &errs)
		if len(errs[tc.field]) == 0 {
			t.Fatalf("%s: expected error on %q, got %s", tc.name, tc.field, string(body))
		}
	}

	// 5) /users/me con token
	{
		st, body := doReq(t, ts.URL, "GET", "/users/me", token, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 me, got %d body=%s", st, string(body))
		}
		if strings.Contains(string(body), "password") {
			t.Fatalf("password hash leaked: %s", string(body))
		}
	}

	// 6) Logout invalida el token
	{
		st, body := doReq(t, ts.URL, "POST", "/logout", token, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 logout, got %d body=%s", st, string(body))
		}
		st, _ = doReq(t, ts.URL, "GET", "/users/me", token, nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 after logout, got %d", st)
		}
	}

	// 7) Nuevo login emite otro token
	{
		st, body := doReq(t, ts.URL, "POST", "/login", "", map[string]any{
			"email": "ana@shelter.org", "password": "supersecret",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 login, got %d", st)
		}
		var out struct {
			Token string `json:"token"`
		}
		mustDecode(t, body, &out)
		if out.Token == "" || out.Token == token {
			t.Fatalf("expected a fresh token after logout, got %q", out.Token)
		}
	}
}

func TestHTTP_AnimalsListPagination(t *testing.T) {
	ts := newServer(t)
	staff := signup(t, ts.URL, "staff@shelter.org", "shelterstaff")

	// Lista vacía: página 1 válida
	{
		st, body := doReq(t, ts.URL, "GET", "/animals/list", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 empty list, got %d body=%s", st, string(body))
		}
		p := decodePage(t, body)
		if p.Count != 0 || len(p.Results) != 0 || p.Next != nil || p.Previous != nil {
			t.Fatalf("unexpected empty page: %+v", p)
		}
	}

	species := []string{"dog", "bird", "cat"}
	ids := make([]string, 0, len(species))
	for _, sp := range species {
		a := createAnimal(t, ts.URL, staff, sp)
		prefix := sp[:3] + "_"
		if len(a.AnimalID) != 12 || !strings.HasPrefix(a.AnimalID, prefix) {
			t.Fatalf("expected %s-prefixed 12 char id, got %q", prefix, a.AnimalID)
		}
		ids = append(ids, a.AnimalID)
	}

	// Página 1 de 2
	{
		st, body := doReq(t, ts.URL, "GET", "/animals/list?page_size=2", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", st, string(body))
		}
		p := decodePage(t, body)
		if p.Count != 3 || len(p.Results) != 2 {
			t.Fatalf("unexpected page 1: count=%d results=%d", p.Count, len(p.Results))
		}
		if p.Results[0].AnimalID != ids[0] || p.Results[1].AnimalID != ids[1] {
			t.Fatalf("expected insertion order")
		}
		if p.Next == nil || !strings.Contains(*p.Next, "page=2") {
			t.Fatalf("expected next link to page 2, got %v", p.Next)
		}
		if p.Previous != nil {
			t.Fatalf("expected no previous on page 1")
		}
	}

	// Página 2 de 2
	{
		st, body := doReq(t, ts.URL, "GET", "/animals/list?page_size=2&page=2", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", st, string(body))
		}
		p := decodePage(t, body)
		if len(p.Results) != 1 || p.Results[0].AnimalID != ids[2] {
			t.Fatalf("unexpected page 2: %+v", p.Results)
		}
		if p.Next != nil || p.Previous == nil {
			t.Fatalf("expected only previous link on last page")
		}
		if strings.Contains(*p.Previous, "page=") {
			t.Fatalf("page 1 link should omit page param, got %s", *p.Previous)
		}
	}

	// Fuera de rango / no numérica => 404 Invalid page.
	for _, q := range []string{"?page=3&page_size=2", "?page=0", "?page=abc"} {
		st, body := doReq(t, ts.URL, "GET", "/animals/list"+q, "", nil)
		if st != http.StatusNotFound || !strings.Contains(string(body), "Invalid page.") {
			t.Fatalf("%s: expected 404 Invalid page., got %d body=%s", q, st, string(body))
		}
	}

	// page_size por encima del máximo se recorta; inválido usa el default.
	for _, q := range []string{"?page_size=5000", "?page_size=-1", "?page_size=x"} {
		st, body := doReq(t, ts.URL, "GET", "/animals/list"+q, "", nil)
		if st != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", q, st)
		}
		if p := decodePage(t, body); len(p.Results) != 3 {
			t.Fatalf("%s: expected 3 results, got %d", q, len(p.Results))
		}
	}
}

func TestHTTP_AnimalOnboardingPermissions(t *testing.T) {
	ts := newServer(t)
	adopter := signup(t, ts.URL, "adopter@shelter.org", "adopter_or_foster")

	payload := map[string]any{"species": "dog", "gender": "male", "breed": "mixed"}

	if st, _ := doReq(t, ts.URL, "POST", "/animals", "", payload); st != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", st)
	}
	if st, _ := doReq(t, ts.URL, "POST", "/animals", adopter, payload); st != http.StatusForbidden {
		t.Fatalf("expected 403 for adopter, got %d", st)
	}

	staff := signup(t, ts.URL, "staff@shelter.org", "")
	st, body := doReq(t, ts.URL, "POST", "/animals", staff, map[string]any{"species": "lizard", "gender": "male"})
	if st != http.StatusBadRequest || !strings.Contains(string(body), "species") {
		t.Fatalf("expected 400 on species, got %d body=%s", st, string(body))
	}
}

func TestHTTP_CascadeDelete(t *testing.T) {
	ts := newServer(t)
	staff := signup(t, ts.URL, "staff@shelter.org", "shelterstaff")
	adopter := signup(t, ts.URL, "adopter@shelter.org", "adopter_or_foster")
	other := signup(t, ts.URL, "other@shelter.org", "volunteer")

	dog := createAnimal(t, ts.URL, staff, "dog")
	cat := createAnimal(t, ts.URL, staff, "cat")
	base := "/animals/" + dog.AnimalID

	// 1) Fichas dependientes (por animal_id y por uuid)
	mustStatus(t, ts.URL, "POST", base+"/health", staff, map[string]any{
		"health_status": "injured", "vaccination_status": "upto_date",
		"parasite_control": "deworming", "temperament": "friendly",
	}, http.StatusCreated)
	mustStatus(t, ts.URL, "POST", "/animals/"+dog.ID+"/previous-owners", staff, map[string]any{
		"name_of_previous_owner": "Juan", "reason_for_intake": "owners_moving_away",
	}, http.StatusCreated)
	mustStatus(t, ts.URL, "POST", base+"/assessments", staff, map[string]any{
		"recommended_next_steps": "medical_evaluation", "cage_id": "C-12",
	}, http.StatusCreated)
	mustStatus(t, ts.URL, "POST", base+"/outcomes", staff, map[string]any{
		"outcome": "adoption", "probability": 0.8,
	}, http.StatusCreated)
	mustStatus(t, ts.URL, "POST", base+"/outcomes", staff, map[string]any{
		"outcome": "adoption", "probability": 1.5,
	}, http.StatusBadRequest)
	mustStatus(t, ts.URL, "POST", base+"/health", adopter, map[string]any{}, http.StatusForbidden)

	{
		st, body := doReq(t, ts.URL, "GET", base+"/health", adopter, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list health, got %d", st)
		}
		var recs []map[string]any
		mustDecode(t, body, &recs)
		if len(recs) != 1 || recs[0]["is_injured"] != true {
			t.Fatalf("expected one injured record, got %s", string(body))
		}
	}

	// 2) Perfil de adoptante con animal asociado
	var adopterID string
	{
		st, body := doReq(t, ts.URL, "POST", "/adopters", adopter, map[string]any{
			"animal": dog.AnimalID, "home_type": "house", "household_size": 2, "has_yard": true,
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 adopter, got %d body=%s", st, string(body))
		}
		var out struct {
			ID     string  `json:"id"`
			Animal *string `json:"animal"`
		}
		mustDecode(t, body, &out)
		if out.Animal == nil || *out.Animal != dog.ID {
			t.Fatalf("expected adopter linked to dog, got %v", out.Animal)
		}
		adopterID = out.ID
	}
	mustStatus(t, ts.URL, "GET", "/adopters/"+adopterID, other, nil, http.StatusForbidden)
	mustStatus(t, ts.URL, "GET", "/adopters/"+adopterID, staff, nil, http.StatusOK)
	mustStatus(t, ts.URL, "POST", "/adopters/"+adopterID+"/inspections", staff, map[string]any{
		"scheduled_for": "2026-01-15T10:00:00Z",
	}, http.StatusCreated)
	mustStatus(t, ts.URL, "POST", "/adopters/"+adopterID+"/inspections", adopter, map[string]any{
		"scheduled_for": "2026-01-15T10:00:00Z",
	}, http.StatusForbidden)

	// 3) Borrar el animal
	mustStatus(t, ts.URL, "DELETE", base, adopter, nil, http.StatusForbidden)
	mustStatus(t, ts.URL, "DELETE", base, staff, nil, http.StatusNoContent)
	mustStatus(t, ts.URL, "GET", base, staff, nil, http.StatusNotFound)
	for _, sub := range []string{"/health", "/previous-owners", "/assessments", "/outcomes"} {
		mustStatus(t, ts.URL, "GET", "/animals/"+dog.ID+sub, staff, nil, http.StatusNotFound)
	}
	mustStatus(t, ts.URL, "GET", "/animals/"+cat.AnimalID, staff, nil, http.StatusOK)

	{
		st, body := doReq(t, ts.URL, "GET", "/adopters/"+adopterID, adopter, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 adopter, got %d", st)
		}
		var out struct {
			Animal *string `json:"animal"`
		}
		mustDecode(t, body, &out)
		if out.Animal != nil {
			t.Fatalf("expected animal cleared after delete, got %v", *out.Animal)
		}
	}
	{
		st, body := doReq(t, ts.URL, "GET", "/animals/list", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list, got %d", st)
		}
		if p := decodePage(t, body); p.Count != 1 {
			t.Fatalf("expected 1 animal left, got %d", p.Count)
		}
	}

	// 4) Borrar el perfil borra sus inspecciones
	mustStatus(t, ts.URL, "DELETE", "/adopters/"+adopterID, adopter, nil, http.StatusNoContent)
	mustStatus(t, ts.URL, "GET", "/adopters/"+adopterID+"/inspections", staff, nil, http.StatusNotFound)
}

// -------------------------
// helpers
// -------------------------

type animalOut struct {
	ID       string `json:"id"`
	AnimalID string `json:"animal_id"`
}

type pageOut struct {
	Count    int         `json:"count"`
	Next     *string     `json:"next"`
	Previous *string     `json:"previous"`
	Results  []animalOut `json:"results"`
}

func signup(t *testing.T, baseURL, email, role string) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/signup", "", map[string]any{
		"email":    email,
		"name":     "Test User",
		"password": "supersecret",
		"usertype": role,
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 signup, got %d body=%s", st, string(body))
	}
	var out struct {
		Token string `json:"token"`
	}
	mustDecode(t, body, &out)
	return out.Token
}

func createAnimal(t *testing.T, baseURL, token, species string) animalOut {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/animals", token, map[string]any{
		"species":       species,
		"gender":        "female",
		"breed":         "mixed",
		"age_in_years":  2,
		"weight_in_kgs": 10.5,
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create animal, got %d body=%s", st, string(body))
	}
	var out animalOut
	mustDecode(t, body, &out)
	return out
}

func decodePage(t *testing.T, body []byte) pageOut {
	t.Helper()
	var p pageOut
	mustDecode(t, body, &p)
	return p
}

func mustStatus(t *testing.T, baseURL, method, path, token string, body any, want int) {
	t.Helper()
	st, resp := doReq(t, baseURL, method, path, token, body)
	if st != want {
		t.Fatalf("%s %s: expected %d, got %d body=%s", method, path, want, st, string(resp))
	}
}

func mustDecode(t *testing.T, body []byte, dst any) {
	t.Helper()
	if err := json.Unmarshal(body, dst); err != nil {
		t.Fatalf("json unmarshal: %v body=%s", err, string(body))
	}
}

func doReq(t *testing.T, baseURL, method, path, token string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
