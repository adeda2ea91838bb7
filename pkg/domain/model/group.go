package model

// Group is a MailerLite subscriber group as returned by GET /groups
type Group struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// GroupList is the envelope of the group listing response
type GroupList struct {
	Data []Group `json:"data"`
}

// GroupOption is a dropdown entry offered to the host for group selection
type GroupOption struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ToOption projects a group into a dropdown entry
func (g Group) ToOption() GroupOption {
	return GroupOption{
		Name:  g.Name,
		Value: g.ID,
	}
}

// Options projects every group in remote order
func (l *GroupList) Options() []GroupOption {
	options := make([]GroupOption, 0, len(l.Data))
	for _, g := range l.Data {
		options = append(options, g.ToOption())
	}
	return options
}
