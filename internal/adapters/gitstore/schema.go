package gitstore

// projectFile is the on-disk schema of a project's configuration object.
type projectFile struct {
	Parent     string            `yaml:"parent"`
	Access     []accessRuleDTO   `yaml:"access"`
	Groups     []groupRefDTO     `yaml:"groups"`
	Properties map[string]string `yaml:"properties"`
}

// accessRuleDTO grants or denies an action on a ref namespace.
type accessRuleDTO struct {
	Ref    string      `yaml:"ref"`
	Action string      `yaml:"action"`
	Group  groupRefDTO `yaml:"group"`
}

// groupRefDTO references an account group by UUID and display name.
type groupRefDTO struct {
	UUID string `yaml:"uuid"`
	Name string `yaml:"name"`
}
