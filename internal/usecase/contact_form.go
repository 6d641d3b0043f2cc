package usecase

import (
	"context"
	"portfolio-contact-backend/internal/domain"
	"sync"
)

// ContactForm is the state machine of one contact form instance.
// Submit is its only transition: Idle (or a terminal state) -> Submitting -> terminal.
type ContactForm struct {
	mu      sync.Mutex
	contact domain.ContactUsecase
	state   domain.SubmissionStatus
	last    *domain.SubmissionOutcome
}

func NewContactForm(contact domain.ContactUsecase) *ContactForm {
	return &ContactForm{
		contact: contact,
		state:   domain.StatusIdle,
	}
}

func (f *ContactForm) State() domain.SubmissionStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Outcome returns the last terminal outcome, or nil before the first submission completes.
func (f *ContactForm) Outcome() *domain.SubmissionOutcome {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.last
}

// Submit runs one submission. It returns domain.ErrSubmissionInFlight without
// contacting the provider when a previous submission has not finished yet.
func (f *ContactForm) Submit(ctx context.Context, req *domain.SubmissionRequest) (*domain.SubmissionOutcome, error) {
	if err := f.begin(); err != nil {
		return nil, err
	}
	return f.run(ctx, req), nil
}

// begin moves the form to Submitting
func (f *ContactForm) begin() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == domain.StatusSubmitting {
		return domain.ErrSubmissionInFlight
	}
	f.state = domain.StatusSubmitting
	f.last = nil
	return nil
}

// run performs a submission started by begin and records its terminal state
func (f *ContactForm) run(ctx context.Context, req *domain.SubmissionRequest) *domain.SubmissionOutcome {
	outcome := f.contact.Submit(ctx, req)

	f.mu.Lock()
	f.state = outcome.Status
	f.last = outcome
	f.mu.Unlock()

	return outcome
}

// ContactForms keeps one ContactForm per client key (typically the client IP)
// so a visitor cannot run two submissions at once.
type ContactForms struct {
	mu      sync.Mutex
	contact domain.ContactUsecase
	forms   map[string]*ContactForm
}

func NewContactForms(contact domain.ContactUsecase) *ContactForms {
	return &ContactForms{
		contact: contact,
		forms:   make(map[string]*ContactForm),
	}
}

// Submit runs req through the form owned by key.
// The lookup and the transition to Submitting happen under one lock, so a
// form is never discarded after another request has started on it.
func (r *ContactForms) Submit(ctx context.Context, key string, req *domain.SubmissionRequest) (*domain.SubmissionOutcome, error) {
	r.mu.Lock()
	form, ok := r.forms[key]
	if !ok {
		form = NewContactForm(r.contact)
		r.forms[key] = form
	}
	if err := form.begin(); err != nil {
		r.mu.Unlock()
		return nil, err
	}
	r.mu.Unlock()

	outcome := form.run(ctx, req)

	// Finished forms are discarded; the next submission starts from Idle
	r.mu.Lock()
	if r.forms[key] == form && form.State() != domain.StatusSubmitting {
		delete(r.forms, key)
	}
	r.mu.Unlock()

	return outcome, nil
}

// Len returns the number of forms currently tracked.
func (r *ContactForms) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.forms)
}

// IsAvailable reports whether the underlying flow can accept submissions.
func (r *ContactForms) IsAvailable() bool {
	return r.contact.IsAvailable()
}
