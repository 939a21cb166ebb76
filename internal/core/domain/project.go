// Package domain contains the core domain types for the project metadata cache.
package domain

import "github.com/google/uuid"

// ProjectName is the unique identifier of a project. Names are case-sensitive,
// may contain hierarchical path segments ("infra/ci/images") and order
// lexicographically by code point.
type ProjectName string

// String returns the name as a plain string.
func (n ProjectName) String() string {
	return string(n)
}

// GroupRef is a reference to an account group as recorded in a project
// configuration. The UUID field is the raw stored string; it is parsed and
// validated only when a caller asks for it.
type GroupRef struct {
	UUID string
	Name string
}

// ParseUUID parses the stored group reference. It reports false for empty,
// malformed or nil references so callers can skip them.
func (g GroupRef) ParseUUID() (uuid.UUID, bool) {
	if g.UUID == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(g.UUID)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// AccessRule grants or denies an action on a ref namespace to a group.
type AccessRule struct {
	Ref    string
	Action string
	Group  GroupRef
}

// ProjectConfig is the loaded configuration of one project. It is immutable
// once constructed.
type ProjectConfig struct {
	Name        ProjectName
	Parent      ProjectName
	AccessRules []AccessRule
	Groups      []GroupRef
	Properties  map[string]string

	// Revision is a content hash of the raw configuration bytes, used to
	// tell apart distinct versions of the same project.
	Revision uint64
}

// GroupRefs returns every group reference the configuration mentions, both
// the declared groups and the groups named by access rules. References are
// returned as stored, including malformed ones.
func (c *ProjectConfig) GroupRefs() []GroupRef {
	refs := make([]GroupRef, 0, len(c.Groups)+len(c.AccessRules))
	refs = append(refs, c.Groups...)
	for _, rule := range c.AccessRules {
		refs = append(refs, rule.Group)
	}
	return refs
}

// ProjectState is the fully loaded state of one project as held by the cache.
type ProjectState struct {
	config *ProjectConfig
}

// NewProjectState wraps a loaded configuration.
func NewProjectState(cfg *ProjectConfig) *ProjectState {
	return &ProjectState{config: cfg}
}

// Name returns the project's name.
func (s *ProjectState) Name() ProjectName {
	return s.config.Name
}

// Parent returns the name of the project this project inherits from, or the
// empty name for the inheritance root.
func (s *ProjectState) Parent() ProjectName {
	return s.config.Parent
}

// Config returns the loaded configuration.
func (s *ProjectState) Config() *ProjectConfig {
	return s.config
}
