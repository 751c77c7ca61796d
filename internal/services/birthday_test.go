package services

import (
	"context"
	"testing"
	"time"

	"github.com/aimcal/birthdaykeeper/internal/common"
	"github.com/aimcal/birthdaykeeper/internal/dateutil"
	"github.com/aimcal/birthdaykeeper/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) models.Date {
	t.Helper()
	d, err := models.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestBirthdayService_AddListDelete(t *testing.T) {
	auth, birthdays := setupServices(t)
	ctx := context.Background()

	alex, err := auth.SignUp(ctx, "Alex", "a@x.com", []byte("p"))
	require.NoError(t, err)

	added, err := birthdays.Add(ctx, models.Birthday{
		UserID:   alex.ID,
		Name:     "Sam",
		Date:     mustDate(t, "1990-06-15"),
		Category: models.CategoryFamily,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, added.ID)

	list, err := birthdays.List(ctx, alex.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Sam", list[0].Name)

	// the Alex/Sam scenario: on 2024-06-15 Sam's birthday is today and
	// Sam turns 34
	today := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	assert.True(t, dateutil.IsToday(list[0].Date, today))
	assert.Equal(t, 34, dateutil.TurningAge(list[0].Date, today))

	require.NoError(t, birthdays.Delete(ctx, added.ID))
	list, err = birthdays.List(ctx, alex.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestBirthdayService_FiveDigitYearNeverReachesStore(t *testing.T) {
	auth, birthdays := setupServices(t)
	ctx := context.Background()

	alex, err := auth.SignUp(ctx, "Alex", "a@x.com", []byte("p"))
	require.NoError(t, err)

	// input-time validation rejects the year before any entry is built
	_, err = models.ParseDate("20245-06-15")
	require.ErrorIs(t, err, common.ErrInvalidYear)

	list, err := birthdays.List(ctx, alex.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestBirthdayService_AddRejectsInvalidEntry(t *testing.T) {
	auth, birthdays := setupServices(t)
	ctx := context.Background()

	alex, err := auth.SignUp(ctx, "Alex", "a@x.com", []byte("p"))
	require.NoError(t, err)

	_, err = birthdays.Add(ctx, models.Birthday{
		UserID:   alex.ID,
		Name:     "", // missing name
		Date:     mustDate(t, "1990-06-15"),
		Category: models.CategoryFamily,
	})
	require.Error(t, err)
}

func TestBirthdayService_GetByID(t *testing.T) {
	auth, birthdays := setupServices(t)
	ctx := context.Background()

	alex, err := auth.SignUp(ctx, "Alex", "a@x.com", []byte("p"))
	require.NoError(t, err)

	added, err := birthdays.Add(ctx, models.Birthday{
		UserID:   alex.ID,
		Name:     "Sam",
		Date:     mustDate(t, "1990-06-15"),
		Category: models.CategoryFamily,
	})
	require.NoError(t, err)

	got, err := birthdays.Get(ctx, alex.ID, added.ID)
	require.NoError(t, err)
	assert.Equal(t, added, got)

	_, err = birthdays.Get(ctx, alex.ID, "missing")
	require.ErrorIs(t, err, common.ErrNotFound)
}
