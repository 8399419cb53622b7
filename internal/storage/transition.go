package storage

import (
	"time"

	"github.com/rentport/rentport/internal/common/cnst"
)

// applyStatusUpdate performs the compound verification-request transition
// on a fetched record: set the status, merge any optional fields present,
// refresh UpdatedAt, and stamp VerifiedAt exactly once on the first entry
// into approved. Both backends route their UpdateRequestStatus through
// this so the one-time stamp cannot diverge.
func applyStatusUpdate(r *VerificationRequest, status cnst.RequestStatus, upd RequestStatusUpdate, now time.Time) {
	r.Status = status
	if upd.Remarks != nil {
		r.Remarks = *upd.Remarks
	}
	if upd.JoiningDate != nil {
		r.JoiningDate = *upd.JoiningDate
	}
	if upd.RentNotes != nil {
		r.RentNotes = *upd.RentNotes
	}
	if upd.UtilityDetails != nil {
		r.UtilityDetails = *upd.UtilityDetails
	}
	r.UpdatedAt = now
	if status == cnst.RequestApproved && r.VerifiedAt == nil {
		t := now
		r.VerifiedAt = &t
	}
}
