package registry

import "errors"

var (
	// ErrEmptyRegistry is returned when no participants are supplied.
	ErrEmptyRegistry = errors.New("registry: no participants")

	// ErrEmptyName is returned for a participant with an empty name.
	ErrEmptyName = errors.New("registry: empty participant name")

	// ErrDuplicateName is returned when the same name is listed twice.
	ErrDuplicateName = errors.New("registry: duplicate participant name")

	// ErrUnknownPartner is returned when a partner is not a participant.
	ErrUnknownPartner = errors.New("registry: partner is not a participant")

	// ErrSelfPartner is returned when a participant is their own partner.
	ErrSelfPartner = errors.New("registry: participant is their own partner")

	// ErrAsymmetricPartner is returned when A names B as partner but B does not name A.
	ErrAsymmetricPartner = errors.New("registry: partnership is not symmetric")

	// ErrUnknownHistory is returned when a history entry is not a participant.
	ErrUnknownHistory = errors.New("registry: history references unknown participant")

	// ErrUnknownName is returned by lookups for names outside the registry.
	ErrUnknownName = errors.New("registry: unknown participant")
)
