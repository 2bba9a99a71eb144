package transfer

import (
	"testing"

	"github.com/mcubank/transfers/internal/domain/transfer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewForm_DefaultsToDomestic(t *testing.T) {
	f := NewForm()
	assert.Equal(t, transfer.Domestic, f.Type)
	assert.Empty(t, f.ValidationErrors)
	assert.Nil(t, f.LastAttempt)
}

func TestForm_EditsClearValidationErrors(t *testing.T) {
	f := NewForm()
	f.ValidationErrors = []string{"Recipient name is required"}

	f.SetRecipientName("Jane Smith")
	assert.Empty(t, f.ValidationErrors)

	f.ValidationErrors = []string{"Invalid amount"}
	f.SetAmount("100.50")
	assert.Empty(t, f.ValidationErrors)
}

func TestForm_SwitchToDomesticClearsInternationalFields(t *testing.T) {
	f := NewForm()
	f.SetType(transfer.International)
	f.SetIBAN("GB82WEST12345698765432")
	f.SetSwiftCode("ABCD-EF-GH-12")

	f.SetType(transfer.Domestic)
	assert.Empty(t, f.IBAN)
	assert.Empty(t, f.SwiftCode)
}

func TestForm_SwitchToInternationalKeepsFields(t *testing.T) {
	f := NewForm()
	f.SetType(transfer.International)
	f.SetIBAN("GB82WEST12345698765432")

	f.SetType(transfer.International)
	assert.Equal(t, "GB82WEST12345698765432", f.IBAN)
}

func TestForm_BuildRequest_DomesticDropsInternationalFields(t *testing.T) {
	f := NewForm()
	f.SetRecipientName("Jane Smith")
	f.SetAccountNumber("987654321")
	f.SetAmount("100.50")
	// fields typed while international, then type switched back via direct set
	f.IBAN = "GB82WEST12345698765432"
	f.SwiftCode = "ABCD-EF-GH-12"

	req := f.BuildRequest()
	assert.Equal(t, transfer.Domestic, req.Type)
	assert.Empty(t, req.IBAN)
	assert.Empty(t, req.SwiftCode)
}

func TestForm_BuildRequest_International(t *testing.T) {
	f := NewForm()
	f.SetType(transfer.International)
	f.SetRecipientName("Jane Smith")
	f.SetAccountNumber("987654321")
	f.SetAmount("100.50")
	f.SetIBAN("GB82WEST12345698765432")
	f.SetSwiftCode("ABCD-EF-GH-12")

	req := f.BuildRequest()
	assert.Equal(t, transfer.International, req.Type)
	assert.Equal(t, "GB82WEST12345698765432", req.IBAN)
	assert.Equal(t, "ABCD-EF-GH-12", req.SwiftCode)
}

func TestForm_RecordAttempt_MirrorsRejectionErrors(t *testing.T) {
	f := NewForm()
	attempt := transfer.NewAttempt(f.BuildRequest())
	require.NoError(t, attempt.TransitionTo(transfer.StatusValidating))
	require.NoError(t, attempt.MarkRejected([]string{"Recipient name is required"}))

	f.RecordAttempt(attempt)
	assert.Equal(t, attempt, f.LastAttempt)
	assert.Equal(t, []string{"Recipient name is required"}, f.ValidationErrors)
}

func TestForm_ClearResult(t *testing.T) {
	f := NewForm()
	f.RecordAttempt(transfer.NewAttempt(f.BuildRequest()))

	f.ClearResult()
	assert.Nil(t, f.LastAttempt)
}

func TestForm_Reset_KeepsTransferType(t *testing.T) {
	f := NewForm()
	f.SetType(transfer.International)
	f.SetRecipientName("Jane Smith")
	f.SetAmount("100.50")
	f.SetIBAN("GB82WEST12345698765432")
	f.ValidationErrors = []string{"Invalid amount"}

	f.Reset()
	assert.Equal(t, transfer.International, f.Type)
	assert.Empty(t, f.RecipientName)
	assert.Empty(t, f.Amount)
	assert.Empty(t, f.IBAN)
	assert.Empty(t, f.ValidationErrors)
	assert.Nil(t, f.LastAttempt)
}
