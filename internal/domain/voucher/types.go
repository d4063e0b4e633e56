package voucher

import "errors"

var (
	ErrInvalidType              = errors.New("voucher type must be percentage or fixed")
	ErrInvalidQualificationType = errors.New("qualification type must be manual, automatic or targeted")
)

type Type string

const (
	TypePercentage Type = "percentage"
	TypeFixed      Type = "fixed"
)

func NewType(s string) (Type, error) {
	t := Type(s)
	if !t.IsValid() {
		return "", ErrInvalidType
	}
	return t, nil
}

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypePercentage, TypeFixed:
		return true
	default:
		return false
	}
}

// QualificationType decides who may redeem a voucher.
// Manual codes are handed out by staff, automatic ones are open to everyone,
// targeted ones are granted to users matching Criteria.
type QualificationType string

const (
	QualificationManual    QualificationType = "manual"
	QualificationAutomatic QualificationType = "automatic"
	QualificationTargeted  QualificationType = "targeted"
)

func NewQualificationType(s string) (QualificationType, error) {
	if s == "" {
		return QualificationManual, nil
	}
	q := QualificationType(s)
	if !q.IsValid() {
		return "", ErrInvalidQualificationType
	}
	return q, nil
}

func (q QualificationType) String() string {
	return string(q)
}

func (q QualificationType) IsValid() bool {
	switch q {
	case QualificationManual, QualificationAutomatic, QualificationTargeted:
		return true
	default:
		return false
	}
}

func (q QualificationType) RequiresGrant() bool {
	return q == QualificationTargeted
}
