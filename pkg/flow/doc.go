// Package flow converts optional values into control-flow values and
// success/failure results.
//
// An Option[T] is either present or absent. A ControlFlow[B, C] either
// continues with a C or breaks with a B. Both arms are ordinary outcomes,
// so every conversion comes in two directions:
// - BreakOr/BreakOrElse/BreakOrDefault: present continues, absent breaks
// - ContinueOr/ContinueOrElse/ContinueOrDefault: present breaks, absent continues
//
// The Result side of the convention only has one direction:
// - OkOr/OkOrElse: present succeeds, absent fails
//
// The *OrElse variants call their producer only when the option is absent.
package flow
