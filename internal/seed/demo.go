package seed

import (
	"fmt"
	"time"

	"github.com/passportpals/passportpals-backend/internal/domain"
)

// Demo collections shown after demo login. Matches, trips and points are
// persisted like real data; conversations are regenerated on every demo login
// instead of stored.

func ts(daysBack int, hoursForward int) time.Time {
	return time.Now().AddDate(0, 0, -daysBack).Add(time.Duration(hoursForward) * time.Hour)
}

func ptr(t time.Time) *time.Time { return &t }

// DemoMatches returns the six starter match threads remapped to userID.
func DemoMatches(userID string) []*domain.Match {
	build := func(n int, otherID, preview string, createdDaysAgo, lastHoursAgo int) *domain.Match {
		return &domain.Match{
			ID:                 fmt.Sprintf("match-%d", n),
			User1ID:            userID,
			User2ID:            otherID,
			CreatedAt:          ts(createdDaysAgo, 0),
			LastMessagePreview: preview,
			LastMessageAt:      ptr(time.Now().Add(-time.Duration(lastHoursAgo) * time.Hour)),
		}
	}
	return []*domain.Match{
		build(1, "hiro-tokyo", "Looking forward to showing you around Tokyo!", 3, 2),
		build(2, "sofia-barcelona", "¡Perfecto! The tapas tour will be amazing 🍷", 5, 24),
		build(3, "priya-mumbai", "The chai here will change your life! ☕", 10, 72),
		build(4, "erik-stockholm", "The archipelago trip was incredible! 🌊", 14, 168),
		build(5, "camille-paris", "That hidden gallery was so special, merci! 🎨", 20, 288),
		build(6, "marco-rome", "Best carbonara I ever had! Grazie mille 🍝", 30, 600),
	}
}

// DemoMessages returns the canned conversations for the starter matches.
func DemoMessages(userID string) []*domain.Message {
	msg := func(n int, matchN int, senderID, text string, daysBack, hoursForward int) *domain.Message {
		return &domain.Message{
			ID:        fmt.Sprintf("msg-%d", n),
			MatchID:   fmt.Sprintf("match-%d", matchN),
			SenderID:  senderID,
			Text:      text,
			CreatedAt: ts(daysBack, hoursForward),
		}
	}
	return []*domain.Message{
		msg(1, 1, "hiro-tokyo", "Hey! I saw we matched. Your profile looks great!", 3, 0),
		msg(2, 1, userID, "Thanks Hiro! I've always wanted to visit Tokyo. What's your neighborhood like?", 3, 1),
		msg(3, 1, "hiro-tokyo", "It's in Shimokitazawa - vintage shops, indie cafés, and live music venues. Very local vibe!", 2, 0),
		msg(4, 1, "hiro-tokyo", "Looking forward to showing you around Tokyo!", 0, -2),

		msg(5, 2, "sofia-barcelona", "¡Hola! Love that you're into architecture too! Have you seen Gaudí's work before?", 5, 0),
		msg(6, 2, userID, "Only in photos - I'm dying to see Casa Batlló in person! Do you have any insider tips?", 5, 2),
		msg(7, 2, "sofia-barcelona", "Go at sunset! The light through those windows is magical ✨", 4, 0),
		msg(8, 2, "sofia-barcelona", "¡Perfecto! The tapas tour will be amazing 🍷", 1, 0),

		msg(9, 3, "priya-mumbai", "Namaste! 🙏 So excited you want to visit Mumbai! First trip to India?", 10, 0),
		msg(10, 3, userID, "Yes! I'm a bit nervous about navigating the city honestly. Any tips?", 10, 3),
		msg(11, 3, "priya-mumbai", "Don't worry! Mumbai is chaotic but friendly. My kitchen is fully veg 🌱", 9, 0),
		msg(12, 3, "priya-mumbai", "The chai here will change your life! ☕", 3, 0),

		msg(13, 4, "erik-stockholm", "Hej! I see you love hiking too! Have you experienced Scandinavian nature before?", 14, 0),
		msg(14, 4, userID, "Never! I'm curious about the midnight sun. Is it really bright all night?", 14, 5),
		msg(15, 4, "erik-stockholm", "In June, yes! The archipelago has 30,000 islands to explore. We can kayak between them!", 12, 0),
		msg(16, 4, "erik-stockholm", "The archipelago trip was incredible! 🌊", 7, 0),

		msg(17, 5, "camille-paris", "Bonjour! Your photography is beautiful - do you shoot film or digital?", 20, 0),
		msg(18, 5, userID, "Both! But I love the surprise of film. Are there good camera shops in Paris?", 20, 4),
		msg(19, 5, "camille-paris", "There's a hidden shop in the 11th that still develops film same-day 📷", 18, 0),
		msg(20, 5, "camille-paris", "That hidden gallery was so special, merci! 🎨", 12, 0),

		msg(21, 6, "marco-rome", "Ciao! I must warn you - after eating here, food anywhere else will seem boring 😄", 30, 0),
		msg(22, 6, userID, "Challenge accepted! What's the first thing I should try?", 30, 6),
		msg(23, 6, "marco-rome", "Cacio e pepe from my nonna's recipe. And NEVER put cream in carbonara! 🍝", 28, 0),
		msg(24, 6, userID, "Best carbonara I ever had! Grazie mille 🍝", 25, 0),
	}
}

// DemoTrips returns six trips as traveler plus one hosted stay, remapped to
// userID.
func DemoTrips(userID string) []*domain.Trip {
	return []*domain.Trip{
		{
			ID: "trip-demo-1", TravelerID: userID, HostID: "hiro-tokyo",
			StartDate: ts(-14, 0), EndDate: ts(-21, 0), GuestsCount: 1,
			Status: domain.TripAccepted, DepositStatus: domain.DepositHeld,
			Notes:       "Excited to explore Tokyo and the music scene!",
			PurposeTags: []string{"cultural exchange", "food", "music"},
		},
		{
			ID: "trip-demo-2", TravelerID: userID, HostID: "sofia-barcelona",
			StartDate: ts(-45, 0), EndDate: ts(-52, 0), GuestsCount: 1,
			Status: domain.TripAccepted, DepositStatus: domain.DepositHeld,
			Notes:       "Architecture tour and tapas adventures!",
			PurposeTags: []string{"architecture", "food", "art"},
		},
		{
			ID: "trip-demo-3", TravelerID: userID, HostID: "priya-mumbai",
			StartDate: ts(-60, 0), EndDate: ts(-67, 0), GuestsCount: 1,
			Status: domain.TripRequested, DepositStatus: domain.DepositPending,
			Notes:       "Would love to learn about vegetarian cooking and visit temples",
			PurposeTags: []string{"cooking", "temples", "cultural exchange"},
		},
		{
			ID: "trip-demo-4", TravelerID: userID, HostID: "erik-stockholm",
			StartDate: ts(60, 0), EndDate: ts(53, 0), GuestsCount: 1,
			Status: domain.TripCompleted, DepositStatus: domain.DepositReleased,
			Notes:       "Amazing archipelago adventure!",
			PurposeTags: []string{"nature", "hiking", "kayaking"},
		},
		{
			ID: "trip-demo-5", TravelerID: userID, HostID: "camille-paris",
			StartDate: ts(90, 0), EndDate: ts(85, 0), GuestsCount: 1,
			Status: domain.TripCompleted, DepositStatus: domain.DepositReleased,
			Notes:       "Gallery hopping and croissant tasting",
			PurposeTags: []string{"art", "photography", "cafés"},
		},
		{
			ID: "trip-demo-6", TravelerID: userID, HostID: "marco-rome",
			StartDate: ts(120, 0), EndDate: ts(114, 0), GuestsCount: 1,
			Status: domain.TripCompleted, DepositStatus: domain.DepositReleased,
			Notes:       "The best pasta of my life!",
			PurposeTags: []string{"food", "cooking", "history"},
		},
		{
			ID: "trip-demo-7", TravelerID: "yuki-kyoto", HostID: userID,
			StartDate: ts(30, 0), EndDate: ts(26, 0), GuestsCount: 1,
			Status: domain.TripCompleted, DepositStatus: domain.DepositReleased,
			Notes:       "Lovely guest who taught me about tea ceremonies",
			PurposeTags: []string{"cultural exchange", "meditation"},
		},
	}
}

// DemoPointsLedger returns the starter earn/spend history.
func DemoPointsLedger(userID string) []*domain.PointsLedgerEntry {
	entry := func(n int, t domain.PointsEntryType, amount int, reason string, daysBack int) *domain.PointsLedgerEntry {
		return &domain.PointsLedgerEntry{
			ID: fmt.Sprintf("pts-%d", n), UserID: userID, Type: t,
			Amount: amount, Reason: reason, CreatedAt: ts(daysBack, 0),
		}
	}
	return []*domain.PointsLedgerEntry{
		entry(1, domain.PointsEarn, 100, "Welcome bonus", 30),
		entry(2, domain.PointsEarn, 100, "Hosted a traveler", 20),
		entry(3, domain.PointsEarn, 50, "Received 5-star review", 15),
		entry(4, domain.PointsEarn, 30, "Verified profile", 10),
		entry(5, domain.PointsSpend, 50, "Super Like boost", 5),
	}
}
