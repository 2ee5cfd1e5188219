// Package wizard implements the multi-step forms used to post help requests
// and offers.
//
// A Wizard is an ordered list of steps. Moving forward is gated by the
// current step's validation, moving back never validates, and submitting is
// only possible from the last step after every step validates again.
package wizard
