package amendment

import "amendtrack/internal/errs"

var (
	ErrNotFound            = errs.E(errs.KindNotFound, "amendment not found")
	ErrProgressNotFound    = errs.E(errs.KindNotFound, "progress entry not found")
	ErrLinkNotFound        = errs.E(errs.KindNotFound, "amendment link not found")
	ErrDocumentNotFound    = errs.E(errs.KindNotFound, "amendment document not found")
	ErrApplicationNotFound = errs.E(errs.KindNotFound, "application not found")
	ErrEmployeeNotFound    = errs.E(errs.KindNotFound, "employee not found")

	ErrDuplicateLink      = errs.E(errs.KindConflict, "link already exists between these amendments")
	ErrDuplicateReference = errs.E(errs.KindConflict, "amendment reference already exists")

	ErrDescriptionRequired = errs.E(errs.KindInvalid, "description is required")
	ErrInvalidType         = errs.E(errs.KindInvalid, "invalid amendment type")
	ErrInvalidStatus       = errs.E(errs.KindInvalid, "invalid amendment status")
	ErrInvalidDevStatus    = errs.E(errs.KindInvalid, "invalid development status")
	ErrInvalidPriority     = errs.E(errs.KindInvalid, "invalid priority")
	ErrInvalidLinkType     = errs.E(errs.KindInvalid, "invalid link type")
	ErrInvalidDocType      = errs.E(errs.KindInvalid, "invalid document type")
	ErrMalformedReference  = errs.E(errs.KindInvalid, "malformed amendment reference")
)
