package analytics

import "github.com/de-tools/sales-atlas/pkg/models/domain"

// ComplianceNotes returns the static compliance text attached to every report.
func ComplianceNotes() domain.ComplianceNotes {
	return domain.ComplianceNotes{
		TaxCompliance: []string{
			"All commission payouts are subject to applicable TDS deduction before disbursement.",
			"GST is applicable on training fees and product sales as per prevailing rates.",
			"Annual salary estimates are gross figures before statutory deductions.",
			"Operational costs are budget estimates and must be reconciled with actual invoices.",
		},
		AuditTrail: []string{
			"Every figure in this report is derived from a single point-in-time data snapshot.",
			"Commission entries are reported per order and per recipient for reconciliation.",
			"Source records are read-only; this report does not modify any ledger entry.",
		},
		DataPrivacy: []string{
			"User identifiers are shown only to authorised administrative staff.",
			"Personal contact details are excluded from all report formats.",
			"Distribute exported files only through approved internal channels.",
		},
	}
}
