package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractContact(t *testing.T) {
	text := `Jane Doe
jane.doe@example.com | (555) 123-4567
linkedin.com/in/janedoe | github.com/janedoe`

	contact := ExtractContact(text)
	assert.Equal(t, "jane.doe@example.com", contact.Email)
	assert.Equal(t, "(555) 123-4567", contact.Phone)
	assert.Equal(t, "linkedin.com/in/janedoe", contact.LinkedIn)
	assert.Equal(t, "github.com/janedoe", contact.GitHub)
}

func TestExtractContact_MissingFieldsStayEmpty(t *testing.T) {
	contact := ExtractContact("No contact details in this text at all")
	assert.Empty(t, contact.Email)
	assert.Empty(t, contact.Phone)
	assert.Empty(t, contact.LinkedIn)
	assert.Empty(t, contact.GitHub)
}
