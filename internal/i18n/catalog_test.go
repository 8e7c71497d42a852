package i18n

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeMessages(t *testing.T, dir, locale, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, locale+".toml"), []byte(content), 0o644))
}

func TestLoad_ResolvesNestedKeys(t *testing.T) {
	dir := t.TempDir()
	writeMessages(t, dir, "es", `
[slot]
not_found = "tramo horario no encontrado"

[common]
internal_error = "error interno"
`)
	writeMessages(t, dir, "ca", `
[slot]
not_found = "tram horari no trobat"
`)

	catalog, err := Load(dir, "es")
	require.NoError(t, err)

	assert.Equal(t, "es", catalog.Locale())
	assert.Equal(t, "tramo horario no encontrado", catalog.T("slot.not_found"))
	assert.Equal(t, "error interno", catalog.T("common.internal_error"))
}

func TestLoad_UnknownLocale(t *testing.T) {
	dir := t.TempDir()
	writeMessages(t, dir, "es", `[common]
internal_error = "error interno"
`)

	_, err := Load(dir, "fr")
	require.Error(t, err)
}

func TestT_MissingKeyFallsBackToKey(t *testing.T) {
	dir := t.TempDir()
	writeMessages(t, dir, "es", `[common]
internal_error = "error interno"
`)

	catalog, err := Load(dir, "es")
	require.NoError(t, err)

	assert.Equal(t, "slot.totally_unknown", catalog.T("slot.totally_unknown"))
}

func TestLoad_ShippedCatalogs(t *testing.T) {
	// The real catalogs live two levels up; both locales must carry the
	// keys the handlers resolve.
	catalog, err := Load("../../messages", "ca")
	require.NoError(t, err)

	for _, key := range []string{
		"common.invalid_request_body",
		"common.internal_error",
		"common.unauthorized",
		"common.upstream_unavailable",
		"auth.invalid_credentials",
		"auth.email_taken",
		"calendar.invalid_month",
		"slot.invalid_date",
		"slot.invalid_time",
		"slot.invalid_fields",
		"slot.end_before_start",
		"slot.not_found",
		"slot.generated",
		"slot.deleted",
		"slot.bulk_delete_partial",
		"slot.too_many_dates",
		"booking.created",
		"booking.status_updated",
		"booking.not_found",
		"booking.slot_closed",
		"booking.slot_full",
		"booking.missing_contact",
		"booking.invalid_kids",
		"booking.comments_too_long",
		"booking.invalid_status",
		"booking.invalid_transition",
	} {
		assert.NotEqual(t, key, catalog.T(key), "missing translation for %s", key)
	}
}
