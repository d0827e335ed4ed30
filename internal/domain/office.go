package domain

// Office is an organizational location node. Offices form a rooted forest
// via ParentID; the engine only ever compares direct office identity.
type Office struct {
	ID       int64
	ParentID *int64
	Name     string
	Region   string
	City     string
	Address  string
	Level    int
}
