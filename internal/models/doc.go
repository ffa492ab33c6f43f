// Package models defines the core domain entities of contactbook.
//
// # Entities
//
//   - Record: one contact — name, phones, birthday, email, address, tags, notes
//   - Note: a named text note attached to a contact, with its own tag set
//   - Group: a named collection of contacts; records are keyed per group
//   - Phone: a parsed phone number with a canonical E.164 form
//   - TagSet: an ordered, duplicate-free set of normalized tags
//
// # Design Principles
//
//  1. **Validate at the point of storage**: every mutator normalizes and
//     validates its input before storing it, and surfaces a typed error
//     (see errors.go) carrying the offending raw value.
//  2. **Canonical forms for equality**: phones compare by E.164 canonical
//     value, tags by their normalized lowercase form, never by raw input.
//  3. **No partial mutation**: a mutator either applies its full effect or
//     returns an error leaving the entity untouched.
//  4. **No presentation**: entities return structured data; rendering is the
//     CLI's job. The only exception is Record.Summary, a plain one-line form.
package models
