// Package services holds the persistence-facing services: anonymous
// identity, per-user product drafts and the saved-lists collection. All of
// them degrade to in-memory-only behavior on storage failure; errors are
// logged, never surfaced to the view as fatal.
package services

// Key-value store keys. Names are kept from earlier releases so existing
// on-device data stays readable.
const (
	keyAnonymousID = "anonymousId"
	keySavedLists  = "listasSalvas"

	draftKeyPrefix = "produtos_"
)

func draftKey(userID string) string {
	return draftKeyPrefix + userID
}
