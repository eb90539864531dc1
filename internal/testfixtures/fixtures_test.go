package testfixtures

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOffice(t *testing.T) {
	office := NewOffice()

	assert.Equal(t, 7, office.Resources.Count())
	assert.Equal(t, 6, office.Bookings.Count())

	created, err := office.Bookings.Create(context.Background(), "d2", "u1", At(6, 0), At(12, 0))
	require.NoError(t, err)
	assert.Regexp(t, `^new-\d{3}$`, created.ID)
	assert.Equal(t, At(5, 0), created.CreatedAt)
}
