package models

// ResourceKind names a kind of owned resource. It is reported back to callers
// together with NotFound, Forbidden and ConstraintViolation failures.
type ResourceKind string

const (
	KindApplication ResourceKind = "application"
	KindFolder      ResourceKind = "folder"
	KindTag         ResourceKind = "tag"
	KindStatus      ResourceKind = "status"
	KindPriority    ResourceKind = "priority"
	KindUser        ResourceKind = "user"
)

// String implements [fmt.Stringer].
func (k ResourceKind) String() string {
	return string(k)
}
