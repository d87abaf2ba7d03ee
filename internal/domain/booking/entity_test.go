//go:build unit

package booking_test

import (
	"strings"
	"testing"
	"time"

	"leen-studio/internal/domain/booking"
	"leen-studio/internal/domain/catalog"
	"leen-studio/internal/domain/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func mustService(t *testing.T, id string) catalog.Service {
	t.Helper()
	s, ok := catalog.FindService(id)
	require.True(t, ok, "service %s must exist", id)
	return s
}

func validDate() string {
	return testNow.AddDate(0, 0, 1).Format("2006-01-02")
}

// walkToOffering drives a wizard through service, schedule and contact.
func walkToOffering(t *testing.T, w *booking.Wizard, serviceID string) {
	t.Helper()
	w.SelectService(mustService(t, serviceID))
	require.NoError(t, w.SelectSchedule(testNow, validDate(), "10:00 AM"))
	require.NoError(t, w.SetContact("Grace", booking.ChannelEmail, "grace@example.com"))
	require.Equal(t, booking.StepOffering, w.Step())
}

func TestSelectService(t *testing.T) {
	w := booking.NewWizard()
	w.SelectService(mustService(t, "2"))

	assert.Equal(t, booking.StepSchedule, w.Step())
	require.NotNil(t, w.Service())
	assert.Equal(t, "Mat: Grounded Faith", w.Service().Name)
}

func TestRecordAlignment(t *testing.T) {
	t.Run("matched recommendation selects the service", func(t *testing.T) {
		w := booking.NewWizard()
		w.RecordAlignment(booking.Alignment{
			Mantra:         "Peace flows through you.",
			Recommendation: "Reformer: Ascension",
		})

		assert.Equal(t, booking.StepSchedule, w.Step())
		require.NotNil(t, w.Service())
		assert.Equal(t, "Reformer: Ascension", w.Service().Name)
	})

	t.Run("unmatched recommendation advances without forcing a selection", func(t *testing.T) {
		w := booking.NewWizard()
		w.RecordAlignment(booking.Alignment{
			Mantra:         "Be still.",
			Recommendation: "Hot Yoga Inferno",
		})

		assert.Equal(t, booking.StepSchedule, w.Step())
		assert.Nil(t, w.Service())

		// But the schedule cannot lock in until a service is picked.
		err := w.SelectSchedule(testNow, validDate(), "10:00 AM")
		assert.ErrorIs(t, err, booking.ErrServiceRequired)
	})
}

func TestSelectSchedule(t *testing.T) {
	newScheduled := func(t *testing.T) *booking.Wizard {
		w := booking.NewWizard()
		w.SelectService(mustService(t, "2"))
		return w
	}

	t.Run("valid date and slot advance to contact", func(t *testing.T) {
		w := newScheduled(t)
		require.NoError(t, w.SelectSchedule(testNow, validDate(), "07:00 AM"))
		assert.Equal(t, booking.StepContact, w.Step())
	})

	cases := []struct {
		name  string
		date  string
		slot  string
		errIs error
	}{
		{name: "today is outside the window", date: testNow.Format("2006-01-02"), slot: "10:00 AM", errIs: booking.ErrDateOutOfWindow},
		{name: "eighth day is outside the window", date: testNow.AddDate(0, 0, 8).Format("2006-01-02"), slot: "10:00 AM", errIs: booking.ErrDateOutOfWindow},
		{name: "seventh day is the last valid one", date: testNow.AddDate(0, 0, 7).Format("2006-01-02"), slot: "10:00 AM"},
		{name: "empty date", date: "", slot: "10:00 AM", errIs: booking.ErrScheduleRequired},
		{name: "empty slot", date: "", slot: "", errIs: booking.ErrScheduleRequired},
		{name: "unknown slot", date: "", slot: "03:13 AM", errIs: booking.ErrUnknownTimeSlot},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := newScheduled(t)
			date := tc.date
			if date == "" && tc.errIs != booking.ErrScheduleRequired {
				date = validDate()
			}
			if tc.errIs == booking.ErrUnknownTimeSlot {
				date = validDate()
			}

			err := w.SelectSchedule(testNow, date, tc.slot)
			if tc.errIs == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.errIs)
			}
		})
	}

	t.Run("schedule before selecting a service is rejected", func(t *testing.T) {
		w := booking.NewWizard()
		err := w.SelectSchedule(testNow, validDate(), "10:00 AM")
		assert.ErrorIs(t, err, booking.ErrInvalidTransition)
	})
}

func TestApplyPromo(t *testing.T) {
	t.Run("flat amounts per code", func(t *testing.T) {
		cases := []struct {
			code  string
			cents int64
		}{
			{code: "ALIGN", cents: 500},
			{code: "WELCOME", cents: 1000},
			{code: "SPIRIT", cents: 800},
			{code: " spirit ", cents: 800},
		}

		for _, tc := range cases {
			t.Run(tc.code, func(t *testing.T) {
				w := booking.NewWizard()
				walkToOffering(t, w, "2")
				require.NoError(t, w.ApplyPromo(tc.code))
				assert.Equal(t, tc.cents, w.DiscountCents())
				assert.Equal(t, strings.ToUpper(strings.TrimSpace(tc.code)), w.PromoCode())
			})
		}
	})

	t.Run("unknown code resets an active discount", func(t *testing.T) {
		w := booking.NewWizard()
		walkToOffering(t, w, "2")
		require.NoError(t, w.ApplyPromo("WELCOME"))

		err := w.ApplyPromo("BOGUS")
		require.ErrorIs(t, err, booking.ErrUnknownPromo)
		assert.Zero(t, w.DiscountCents())
		assert.Empty(t, w.PromoCode())
	})

	t.Run("cannot apply before the offering step", func(t *testing.T) {
		w := booking.NewWizard()
		w.SelectService(mustService(t, "2"))

		err := w.ApplyPromo("WELCOME")
		assert.ErrorIs(t, err, booking.ErrInvalidTransition)
		assert.Zero(t, w.DiscountCents())
	})
}

func TestTotalCents(t *testing.T) {
	t.Run("mat class with daycare", func(t *testing.T) {
		w := booking.NewWizard()
		w.SelectService(mustService(t, "2")) // $25.00

		assert.Equal(t, int64(2500), w.TotalCents())

		w.SetDaycare(true)
		assert.Equal(t, int64(3000), w.TotalCents())
	})

	t.Run("discount floors at zero", func(t *testing.T) {
		w := booking.NewWizard()
		walkToOffering(t, w, "2") // $25.00
		require.NoError(t, w.ApplyPromo("WELCOME"))
		require.NoError(t, w.ApplyPromo("WELCOME")) // replaces, does not stack
		assert.Equal(t, int64(1500), w.TotalCents())
	})

	t.Run("no service means zero", func(t *testing.T) {
		w := booking.NewWizard()
		assert.Zero(t, w.TotalCents())
	})
}

func TestConfirm(t *testing.T) {
	t.Run("issues a dated ticket and reaches the ticket step", func(t *testing.T) {
		w := booking.NewWizard()
		walkToOffering(t, w, "2")

		ticket, err := w.Confirm(testNow, true, payment.MethodDebit)
		require.NoError(t, err)

		assert.Regexp(t, `^LOC-\d{1,5}-2025$`, ticket)
		assert.Equal(t, booking.StepTicket, w.Step())
		assert.True(t, w.Daycare())
		assert.Equal(t, payment.MethodDebit, w.Method())
	})

	t.Run("cannot confirm twice", func(t *testing.T) {
		w := booking.NewWizard()
		walkToOffering(t, w, "2")
		_, err := w.Confirm(testNow, false, payment.MethodPaypal)
		require.NoError(t, err)

		_, err = w.Confirm(testNow, false, payment.MethodPaypal)
		assert.ErrorIs(t, err, booking.ErrAlreadyConfirmed)
	})

	t.Run("cannot confirm before the offering step", func(t *testing.T) {
		w := booking.NewWizard()
		w.SelectService(mustService(t, "1"))

		_, err := w.Confirm(testNow, false, payment.MethodDebit)
		assert.ErrorIs(t, err, booking.ErrInvalidTransition)
	})
}

func TestBackAndReset(t *testing.T) {
	t.Run("back is lossless", func(t *testing.T) {
		w := booking.NewWizard()
		walkToOffering(t, w, "3")

		require.NoError(t, w.Back())
		assert.Equal(t, booking.StepContact, w.Step())
		require.NotNil(t, w.Contact())
		assert.Equal(t, "Grace", w.Contact().Name())
		assert.Equal(t, validDate(), w.Date())

		require.NoError(t, w.Back())
		require.NoError(t, w.Back())
		assert.Equal(t, booking.StepService, w.Step())
		assert.NotNil(t, w.Service())

		assert.ErrorIs(t, w.Back(), booking.ErrInvalidTransition)
	})

	t.Run("reset clears everything", func(t *testing.T) {
		w := booking.NewWizard()
		walkToOffering(t, w, "3")
		require.NoError(t, w.ApplyPromo("ALIGN"))

		w.Reset()

		assert.Equal(t, booking.StepService, w.Step())
		assert.Nil(t, w.Service())
		assert.Nil(t, w.Contact())
		assert.Empty(t, w.Date())
		assert.Zero(t, w.DiscountCents())
		assert.Empty(t, w.TicketID())
	})
}
