package migrate

// Resolver maps legacy natural keys to the surrogate ids assigned during
// derivation. A lookup miss means the derivation scan was incomplete and is
// always fatal; the engine never writes a dangling reference.
type Resolver struct {
	users  map[string]uint
	topics map[string]uint
}

// NewResolver is only constructible from a completed Derivation.
func NewResolver(d *Derivation) *Resolver {
	return &Resolver{users: d.userIDs, topics: d.topicIDs}
}

func (r *Resolver) UserID(username string) (uint, error) {
	id, ok := r.users[username]
	if !ok {
		return 0, &ResolutionError{Kind: "username", Ref: username}
	}
	return id, nil
}

func (r *Resolver) TopicID(name string) (uint, error) {
	id, ok := r.topics[name]
	if !ok {
		return 0, &ResolutionError{Kind: "topic", Ref: name}
	}
	return id, nil
}
