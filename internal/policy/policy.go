// Package policy holds the visibility and ownership rules for gallery
// resources. The functions are pure predicates: handlers branch on the
// result and emit the authorization failure themselves.
package policy

import "photogallery/internal/model"

// CanView reports whether the requester may read the photo. Published photos
// are visible to everyone, unpublished ones only to their owner. A nil
// requesterID means the request is unauthenticated.
func CanView(photo *model.Photo, requesterID *uint) bool {
	if photo.IsPublished {
		return true
	}
	return requesterID != nil && *requesterID == photo.UserID
}

// CanModify reports whether the requester may mutate a resource owned by
// ownerID. An absent requester never passes, regardless of owner.
func CanModify(ownerID uint, requesterID *uint) bool {
	return requesterID != nil && *requesterID == ownerID
}
