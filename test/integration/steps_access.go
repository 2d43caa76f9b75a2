package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cucumber/godog"

	"github.com/workdeck/workdeck/pkg/identity"
)

// StepsContext holds state shared between step definitions
type StepsContext struct {
	tc           *TestContext
	response     *http.Response
	responseBody []byte
	tokens       map[string]string
	workspaces   map[string]int64
	collections  map[string]int64
}

// NewStepsContext creates a new steps context
func NewStepsContext(tc *TestContext) *StepsContext {
	return &StepsContext{
		tc:          tc,
		tokens:      make(map[string]string),
		workspaces:  make(map[string]int64),
		collections: make(map[string]int64),
	}
}

// RegisterSteps registers all step definitions
func (s *StepsContext) RegisterSteps(sc *godog.ScenarioContext) {
	// Background steps
	sc.Step(`^a Workdeck server is running$`, s.aWorkdeckServerIsRunning)
	sc.Step(`^a user "([^"]*)" with an access token$`, s.aUserWithAnAccessToken)

	// Resource steps
	sc.Step(`^"([^"]*)" creates a workspace "([^"]*)"$`, s.createsAWorkspace)
	sc.Step(`^"([^"]*)" creates a collection "([^"]*)" in workspace "([^"]*)"$`, s.createsACollection)
	sc.Step(`^"([^"]*)" deletes workspace "([^"]*)"$`, s.deletesWorkspace)

	// Grant steps
	sc.Step(`^"([^"]*)" grants "([^"]*)" on workspace "([^"]*)" to "([^"]*)"$`, s.grantsOnWorkspace)
	sc.Step(`^"([^"]*)" grants "([^"]*)" on collection "([^"]*)" to "([^"]*)"$`, s.grantsOnCollection)
	sc.Step(`^"([^"]*)" revokes "([^"]*)" on workspace "([^"]*)" from "([^"]*)"$`, s.revokesOnWorkspace)

	// Access checks
	sc.Step(`^"([^"]*)" requests workspace "([^"]*)"$`, s.requestsWorkspace)
	sc.Step(`^"([^"]*)" requests collection "([^"]*)"$`, s.requestsCollection)
	sc.Step(`^"([^"]*)" renames workspace "([^"]*)" to "([^"]*)"$`, s.renamesWorkspace)
	sc.Step(`^"([^"]*)" lists users with access to workspace "([^"]*)"$`, s.listsUsersWithAccess)
	sc.Step(`^"([^"]*)" requests the workspace tree$`, s.requestsTree)

	// Response steps
	sc.Step(`^the response status should be (\d+)$`, s.theResponseStatusShouldBe)
	sc.Step(`^the access listing should have (\d+) entries$`, s.theAccessListingShouldHaveEntries)
	sc.Step(`^the access listing entry for "([^"]*)" should have (\d+) permissions$`, s.theAccessListingEntryShouldHavePermissions)
	sc.Step(`^the tree should contain workspace "([^"]*)"$`, s.theTreeShouldContainWorkspace)
	sc.Step(`^the tree should not contain workspace "([^"]*)"$`, s.theTreeShouldNotContainWorkspace)
}

func (s *StepsContext) aWorkdeckServerIsRunning() error {
	// Server is already running via TestContext
	return nil
}

func (s *StepsContext) aUserWithAnAccessToken(principal string) error {
	token, err := identity.NewToken(testSigningKey, principal, time.Hour)
	if err != nil {
		return err
	}
	s.tokens[principal] = token
	return nil
}

func (s *StepsContext) request(principal, method, path string, payload interface{}) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, s.tc.ServerURL+path, body)
	if err != nil {
		return err
	}
	token, ok := s.tokens[principal]
	if !ok {
		return fmt.Errorf("no token for principal %q", principal)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.tc.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	s.response = resp
	s.responseBody, err = io.ReadAll(resp.Body)
	return err
}

func (s *StepsContext) createsAWorkspace(principal, name string) error {
	err := s.request(principal, "POST", "/workspaces", map[string]string{"name": name, "kind": "team"})
	if err != nil {
		return err
	}
	if s.response.StatusCode != http.StatusCreated {
		return fmt.Errorf("expected 201, got %d: %s", s.response.StatusCode, s.responseBody)
	}

	var created struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(s.responseBody, &created); err != nil {
		return err
	}
	s.workspaces[name] = created.ID
	return nil
}

func (s *StepsContext) createsACollection(principal, name, workspace string) error {
	workspaceID, ok := s.workspaces[workspace]
	if !ok {
		return fmt.Errorf("unknown workspace %q", workspace)
	}

	err := s.request(principal, "POST", fmt.Sprintf("/workspaces/%d/collections", workspaceID), map[string]string{"name": name})
	if err != nil {
		return err
	}
	if s.response.StatusCode != http.StatusCreated {
		return fmt.Errorf("expected 201, got %d: %s", s.response.StatusCode, s.responseBody)
	}

	var created struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(s.responseBody, &created); err != nil {
		return err
	}
	s.collections[name] = created.ID
	return nil
}

func (s *StepsContext) deletesWorkspace(principal, workspace string) error {
	workspaceID, ok := s.workspaces[workspace]
	if !ok {
		return fmt.Errorf("unknown workspace %q", workspace)
	}
	return s.request(principal, "DELETE", fmt.Sprintf("/workspaces/%d", workspaceID), nil)
}

func (s *StepsContext) grantsOnWorkspace(granter, permission, workspace, grantee string) error {
	workspaceID, ok := s.workspaces[workspace]
	if !ok {
		return fmt.Errorf("unknown workspace %q", workspace)
	}
	return s.request(granter, "POST", fmt.Sprintf("/workspaces/%d/access", workspaceID), map[string]string{
		"principal_id": grantee,
		"permission":   permission,
	})
}

func (s *StepsContext) grantsOnCollection(granter, permission, collection, grantee string) error {
	collectionID, ok := s.collections[collection]
	if !ok {
		return fmt.Errorf("unknown collection %q", collection)
	}
	return s.request(granter, "POST", fmt.Sprintf("/collections/%d/access", collectionID), map[string]string{
		"principal_id": grantee,
		"permission":   permission,
	})
}

func (s *StepsContext) revokesOnWorkspace(revoker, permission, workspace, grantee string) error {
	workspaceID, ok := s.workspaces[workspace]
	if !ok {
		return fmt.Errorf("unknown workspace %q", workspace)
	}
	return s.request(revoker, "DELETE", fmt.Sprintf("/workspaces/%d/access", workspaceID), map[string]string{
		"principal_id": grantee,
		"permission":   permission,
	})
}

func (s *StepsContext) requestsWorkspace(principal, workspace string) error {
	workspaceID, ok := s.workspaces[workspace]
	if !ok {
		return fmt.Errorf("unknown workspace %q", workspace)
	}
	return s.request(principal, "GET", fmt.Sprintf("/workspaces/%d", workspaceID), nil)
}

func (s *StepsContext) requestsCollection(principal, collection string) error {
	collectionID, ok := s.collections[collection]
	if !ok {
		return fmt.Errorf("unknown collection %q", collection)
	}
	return s.request(principal, "GET", fmt.Sprintf("/collections/%d", collectionID), nil)
}

func (s *StepsContext) renamesWorkspace(principal, workspace, newName string) error {
	workspaceID, ok := s.workspaces[workspace]
	if !ok {
		return fmt.Errorf("unknown workspace %q", workspace)
	}
	return s.request(principal, "PUT", fmt.Sprintf("/workspaces/%d", workspaceID), map[string]string{
		"name": newName,
		"kind": "team",
	})
}

func (s *StepsContext) listsUsersWithAccess(principal, workspace string) error {
	workspaceID, ok := s.workspaces[workspace]
	if !ok {
		return fmt.Errorf("unknown workspace %q", workspace)
	}
	return s.request(principal, "GET", fmt.Sprintf("/workspaces/%d/users", workspaceID), nil)
}

func (s *StepsContext) requestsTree(principal string) error {
	return s.request(principal, "GET", "/workspaces/tree", nil)
}

func (s *StepsContext) theResponseStatusShouldBe(status int) error {
	if s.response == nil {
		return fmt.Errorf("no response recorded")
	}
	if s.response.StatusCode != status {
		return fmt.Errorf("expected status %d, got %d: %s", status, s.response.StatusCode, s.responseBody)
	}
	return nil
}

type accessListingEntry struct {
	PrincipalID string   `json:"principal_id"`
	IsOwner     bool     `json:"is_owner"`
	Permissions []string `json:"permissions"`
}

func (s *StepsContext) accessListing() ([]accessListingEntry, error) {
	var listing []accessListingEntry
	if err := json.Unmarshal(s.responseBody, &listing); err != nil {
		return nil, fmt.Errorf("failed to parse access listing: %w", err)
	}
	return listing, nil
}

func (s *StepsContext) theAccessListingShouldHaveEntries(count int) error {
	listing, err := s.accessListing()
	if err != nil {
		return err
	}
	if len(listing) != count {
		return fmt.Errorf("expected %d entries, got %d: %s", count, len(listing), s.responseBody)
	}
	return nil
}

func (s *StepsContext) theAccessListingEntryShouldHavePermissions(principal string, count int) error {
	listing, err := s.accessListing()
	if err != nil {
		return err
	}
	for _, entry := range listing {
		if entry.PrincipalID == principal {
			if len(entry.Permissions) != count {
				return fmt.Errorf("expected %d permissions for %q, got %v", count, principal, entry.Permissions)
			}
			return nil
		}
	}
	return fmt.Errorf("no listing entry for %q: %s", principal, s.responseBody)
}

func (s *StepsContext) treeWorkspaceNames() ([]string, error) {
	var tree []struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(s.responseBody, &tree); err != nil {
		return nil, fmt.Errorf("failed to parse tree: %w", err)
	}

	names := make([]string, 0, len(tree))
	for _, node := range tree {
		names = append(names, node.Name)
	}
	return names, nil
}

func (s *StepsContext) theTreeShouldContainWorkspace(name string) error {
	names, err := s.treeWorkspaceNames()
	if err != nil {
		return err
	}
	for _, n := range names {
		if n == name {
			return nil
		}
	}
	return fmt.Errorf("workspace %q not in tree: %v", name, names)
}

func (s *StepsContext) theTreeShouldNotContainWorkspace(name string) error {
	names, err := s.treeWorkspaceNames()
	if err != nil {
		return err
	}
	for _, n := range names {
		if n == name {
			return fmt.Errorf("workspace %q unexpectedly in tree", name)
		}
	}
	return nil
}
