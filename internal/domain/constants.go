package domain

// Relation is the derived friendship state between two users. It is computed
// from friend-request rows on every read and never stored.
type Relation string

const (
	RelationNone   Relation = "NONE"
	RelationAsking Relation = "ASKING" // self sent a pending request
	RelationAsked  Relation = "ASKED"  // self received a pending request
	RelationFriend Relation = "FRIEND"
)

const (
	NotificationPoke        = "POKE"
	NotificationLike        = "LIKE"
	NotificationComment     = "COMMENT"
	NotificationCommentLike = "COMMENT_LIKE"
	NotificationMention     = "MENTION"
	NotificationFriend      = "FRIEND"
)

// AllNotificationTypes is the default granted set for a fresh push registration.
var AllNotificationTypes = []string{
	NotificationPoke,
	NotificationLike,
	NotificationComment,
	NotificationCommentLike,
	NotificationMention,
	NotificationFriend,
}

const (
	WorkoutDone = "DONE"
	WorkoutRest = "REST"
)

// PushTokenLoggedOut is stored in place of a device token after an intentional
// sign-out, so a later login can tell "signed out" apart from "lost permission".
const PushTokenLoggedOut = "logout"

const MinUsernameLen = 3
