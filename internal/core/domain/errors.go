package domain

import "go.trai.ch/zerr"

var (
	// ErrRepositoryNotFound is returned by the repository store when no
	// repository exists for the requested project.
	ErrRepositoryNotFound = zerr.New("repository not found")

	// ErrProjectNotFound is returned when the requested project has no
	// repository in the backing store. This is an expected outcome, not a
	// storage fault.
	ErrProjectNotFound = zerr.New("project not found")

	// ErrProjectUnavailable is returned when loading a project's state fails
	// for any reason other than the project not existing.
	ErrProjectUnavailable = zerr.New("project state not available")

	// ErrWellKnownProjectMissing is returned when a configured well-known
	// project resolves to not-found. This indicates a corrupted installation
	// and is not recoverable by the caller.
	ErrWellKnownProjectMissing = zerr.New("well-known project missing")

	// ErrProjectListUnavailable is returned when the backing store cannot
	// enumerate the known projects.
	ErrProjectListUnavailable = zerr.New("cannot list available projects")

	// ErrProjectConfigInvalid is returned when a project's stored
	// configuration cannot be parsed.
	ErrProjectConfigInvalid = zerr.New("invalid project configuration")

	// ErrServerConfigInvalid is returned when the server configuration file
	// cannot be parsed.
	ErrServerConfigInvalid = zerr.New("invalid server configuration")
)
