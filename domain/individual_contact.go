package domain

// IndividualContact is a one-to-one conversation with another user.
type IndividualContact struct {
	conversation
	user *User
}

func NewIndividualContact(name string, user *User) *IndividualContact {
	return &IndividualContact{conversation: conversation{name: name}, user: user}
}

// User may be nil while the contact is being rebuilt from the store.
func (c *IndividualContact) User() *User {
	return c.user
}

func (c *IndividualContact) SetUser(user *User) {
	c.user = user
}

func (c *IndividualContact) AddMessage(message *Message) {
	c.appendMessage(message)
}

func (c *IndividualContact) Kind() ContactKind {
	return KindIndividual
}
