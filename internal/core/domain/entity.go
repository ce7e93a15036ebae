package domain

// Entity is implemented by every business object the repositories manage.
// Clone must return a copy that shares no mutable state with the receiver.
type Entity[E any] interface {
	EntityID() string
	Clone() E
}
