// Package domain defines the core business entities of the flashcard
// application: cards, named card sets, and study assessments, along with
// the validation rules that guard them.
package domain
