package domain

const (
	// ProjectFileName is the name of the per-project configuration object
	// inside the repository store.
	ProjectFileName = "project.yaml"

	// ServerConfigFileName is the name of the server configuration file.
	ServerConfigFileName = "revet.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)
