package constants

// ContextUserKey is the gin context key under which the resolved user is stored.
const ContextUserKey = "current_user"

// MinPasswordLength is the minimum accepted password length on registration.
const MinPasswordLength = 8
