package member

// Onboarding gate: email verification and admin approval are independent
// flags; a member becomes active once both are set.

func (m *Member) VerifyEmail() {
	m.EmailVerified = true
	m.refreshActive()
}

func (m *Member) ApproveOnboarding() error {
	if m.ApprovalStatus != ApprovalPending {
		return ErrInvalidState
	}
	m.AdminApproved = true
	m.ApprovalStatus = ApprovalApproved
	m.refreshActive()
	return nil
}

func (m *Member) RejectOnboarding(notes string) error {
	if m.ApprovalStatus != ApprovalPending {
		return ErrInvalidState
	}
	m.ApprovalStatus = ApprovalRejected
	m.ApprovalNotes = notes
	return nil
}

// ResubmitOnboarding lets a rejected applicant re-enter the queue.
func (m *Member) ResubmitOnboarding() error {
	if m.ApprovalStatus != ApprovalRejected {
		return ErrInvalidState
	}
	m.ApprovalStatus = ApprovalPending
	m.ApprovalNotes = ""
	return nil
}

func (m *Member) Deactivate() { m.IsActive = false }

func (m *Member) Reactivate() { m.refreshActive() }

func (m *Member) refreshActive() {
	m.IsActive = m.EmailVerified && m.AdminApproved
}
