package catalog

// Identity is the matching key of a stream: its optional namespace and name.
// An absent namespace never equals an explicit empty namespace.
type Identity struct {
	Namespace    string `json:"namespace,omitempty"`
	HasNamespace bool   `json:"has_namespace"`
	Name         string `json:"name"`
}

// NewIdentity builds an identity from a name and an optional namespace.
func NewIdentity(name string, namespace *string) Identity {
	if namespace == nil {
		return Identity{Name: name}
	}
	return Identity{Name: name, Namespace: *namespace, HasNamespace: true}
}

// String renders "namespace.name", or just "name" without a namespace.
func (i Identity) String() string {
	if !i.HasNamespace {
		return i.Name
	}
	return i.Namespace + "." + i.Name
}
