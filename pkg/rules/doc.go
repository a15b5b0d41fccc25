// Package rules holds the username policy: emptiness and minimum length
// validation plus the restricted-word test.
//
// Validation is built from small Rule values (a Check func paired with a
// ValidationError) evaluated in order by Apply, which stops at the first
// failing rule. A Rules value is immutable once constructed and is safe for
// concurrent use.
//
// # Usage
//
//	r, err := rules.New(6, []string{"admin", "root"})
//	if err != nil {
//	    return err // negative minimum length
//	}
//
//	if err := r.Validate("bob"); err != nil {
//	    fmt.Println(err) // username must be 6 characters long
//	}
//
//	r.IsRestricted("superadmin") // true, plain substring match
//
// The restricted-word test is a case-sensitive substring search with no word
// boundary awareness: a short restricted word matches inside longer tokens.
package rules
