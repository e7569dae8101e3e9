package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	p := Default()
	p.AreaOfInterest = "Data Science"
	assert.NoError(t, p.Validate())
}

func TestValidateEmptyArea(t *testing.T) {
	p := Default()

	err := p.Validate()
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "area of interest", verr.Field)
}

func TestValidateDailyHoursBounds(t *testing.T) {
	p := Default()
	p.AreaOfInterest = "Cybersecurity"

	p.DailyHours = 0.25
	assert.Error(t, p.Validate())

	p.DailyHours = 9
	assert.Error(t, p.Validate())

	p.DailyHours = 0.5
	assert.NoError(t, p.Validate())

	p.DailyHours = 8
	assert.NoError(t, p.Validate())
}
