// Package access decides whether a principal may perform a mutating action.
//
// The guard holds no state. Roles come from the principal, which is rebuilt
// from the user store on every request, so a revoked role stops working on
// the next call.
package access

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"articlehub/internal/domain/entity"
)

// Action names a guarded operation.
type Action string

const (
	ActionAuthorArticle Action = "author_article"
	ActionEditArticle   Action = "edit_article"
	ActionDeleteArticle Action = "delete_article"
	ActionComment       Action = "comment"
	ActionEditComment   Action = "edit_comment"
	ActionDeleteComment Action = "delete_comment"
)

var deniedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "access_denied_total",
	Help: "Total number of denied actions by action",
}, []string{"action"})

// Decision is the result of a check. A denial is a normal value, not an error.
type Decision struct {
	Allowed bool
	Reason  string // user-visible refusal message when !Allowed
}

var allow = Decision{Allowed: true}

func deny(a Action, reason string) Decision {
	deniedTotal.WithLabelValues(string(a)).Inc()
	return Decision{Reason: reason}
}

type Guard struct{}

// CanMutate reports whether p owns the resource or is an Admin.
// A resource without an owner can only be changed by an Admin.
func (Guard) CanMutate(p entity.Principal, ownerID *int64) bool {
	if p.HasRole(entity.RoleAdmin) {
		return true
	}
	return p.Owns(ownerID)
}

// CanAuthor reports whether p may create or edit articles at all.
func (Guard) CanAuthor(p entity.Principal) bool {
	return p.HasRole(entity.RoleEditor) || p.HasRole(entity.RoleAdmin)
}

// CanComment reports whether p may post comments: any signed-in user.
func (Guard) CanComment(p entity.Principal) bool {
	return p.Authenticated()
}

// Check evaluates action for p against an optional owner.
func (g Guard) Check(a Action, p entity.Principal, ownerID *int64) Decision {
	switch a {
	case ActionAuthorArticle:
		if !g.CanAuthor(p) {
			return deny(a, "only editors and admins can write articles")
		}
	case ActionEditArticle:
		if !g.CanAuthor(p) || !g.CanMutate(p, ownerID) {
			return deny(a, "you cannot edit an article that is not yours")
		}
	case ActionDeleteArticle:
		if !g.CanMutate(p, ownerID) {
			return deny(a, "you cannot delete an article that is not yours")
		}
	case ActionComment:
		if !g.CanComment(p) {
			return deny(a, "sign in to comment")
		}
	case ActionEditComment:
		if !g.CanMutate(p, ownerID) {
			return deny(a, "you cannot edit a comment that is not yours")
		}
	case ActionDeleteComment:
		if !g.CanMutate(p, ownerID) {
			return deny(a, "you cannot delete a comment that is not yours")
		}
	default:
		return deny(a, "action not permitted")
	}
	return allow
}
