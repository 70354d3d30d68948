package httpapi

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/anshul/memodeck/internal/auth"
	"github.com/anshul/memodeck/internal/store"
)

// webhookTolerance is the accepted clock skew on the signed timestamp.
const webhookTolerance = 5 * time.Minute

// maxWebhookBody caps the webhook payload size.
const maxWebhookBody = 1 << 20

// Feature names delivered in billing events.
const (
	featureUnlimitedDecks = "unlimited_decks"
	featureAIGeneration   = "ai_flashcard_generation"
)

// billingEvent is the subset of the billing provider's payload we act on.
type billingEvent struct {
	Type string `json:"type"`
	Data struct {
		ID             string `json:"id"`
		UserID         string `json:"user_id"`
		EmailAddresses []struct {
			EmailAddress string `json:"email_address"`
		} `json:"email_addresses"`
		PublicMetadata struct {
			Plan     string   `json:"plan"`
			Features []string `json:"features"`
		} `json:"public_metadata"`
		Plan *struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"plan"`
		Features []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"features"`
	} `json:"data"`
}

func (s *Server) billingWebhook(w http.ResponseWriter, r *http.Request) {
	if s.webhookSecret == "" {
		s.log.Error("billing webhook secret not configured")
		http.Error(w, "webhook not configured", http.StatusInternalServerError)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
	if err != nil {
		http.Error(w, "unreadable body", http.StatusBadRequest)
		return
	}

	if !verifyWebhookSignature(s.webhookSecret, r.Header, body, time.Now()) {
		s.log.Warn("billing webhook signature rejected")
		http.Error(w, "signature verification failed", http.StatusBadRequest)
		return
	}

	var evt billingEvent
	if err := json.Unmarshal(body, &evt); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}

	if err := s.applyBillingEvent(r, evt); err != nil {
		s.log.WithError(err).WithField("event", evt.Type).Error("billing event failed")
		http.Error(w, "error processing webhook", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) applyBillingEvent(r *http.Request, evt billingEvent) error {
	switch evt.Type {
	case "user.created", "user.updated":
		plan := evt.Data.PublicMetadata.Plan
		if plan == "" {
			plan = auth.PlanFree
		}
		features := evt.Data.PublicMetadata.Features
		isPro := plan == auth.PlanPro

		var email string
		if len(evt.Data.EmailAddresses) > 0 {
			email = evt.Data.EmailAddresses[0].EmailAddress
		}

		s.log.WithFields(logrus.Fields{"user": evt.Data.ID, "plan": plan}).Info("user upsert from webhook")
		return s.store.UserRepo().Upsert(r.Context(), store.User{
			ID:             evt.Data.ID,
			Email:          email,
			Plan:           plan,
			UnlimitedDecks: slices.Contains(features, featureUnlimitedDecks) || isPro,
			AIGeneration:   slices.Contains(features, featureAIGeneration) || isPro,
		})

	case "subscription.created", "subscription.updated":
		userID := evt.Data.UserID
		if userID == "" {
			userID = evt.Data.ID
		}
		if userID == "" {
			return nil
		}

		plan := auth.PlanFree
		isPro := false
		if evt.Data.Plan != nil {
			if evt.Data.Plan.Name != "" {
				plan = evt.Data.Plan.Name
			} else if evt.Data.Plan.ID != "" {
				plan = evt.Data.Plan.ID
			}
			isPro = evt.Data.Plan.Name == auth.PlanPro || evt.Data.Plan.ID == auth.PlanPro
		}
		names := make([]string, 0, len(evt.Data.Features))
		for _, f := range evt.Data.Features {
			if f.Name != "" {
				names = append(names, f.Name)
			} else {
				names = append(names, f.ID)
			}
		}

		s.log.WithFields(logrus.Fields{"user": userID, "plan": plan}).Info("subscription update from webhook")
		return s.store.UserRepo().Upsert(r.Context(), store.User{
			ID:             userID,
			Plan:           plan,
			UnlimitedDecks: slices.Contains(names, featureUnlimitedDecks) || isPro,
			AIGeneration:   slices.Contains(names, featureAIGeneration) || isPro,
		})

	case "subscription.deleted":
		userID := evt.Data.UserID
		if userID == "" {
			userID = evt.Data.ID
		}
		if userID == "" {
			return nil
		}

		s.log.WithField("user", userID).Info("subscription deleted, reverting to free")
		return s.store.UserRepo().Upsert(r.Context(), store.User{
			ID:   userID,
			Plan: auth.PlanFree,
		})

	default:
		// Unknown kinds are acknowledged and ignored.
		s.log.WithField("event", evt.Type).Info("unhandled webhook event")
		return nil
	}
}

// verifyWebhookSignature checks the svix signature scheme: the signed
// content is "<id>.<timestamp>.<body>", the secret is base64 (with an
// optional whsec_ prefix), and the signature header carries one or more
// space-separated "v1,<base64 HMAC-SHA256>" entries.
func verifyWebhookSignature(secret string, h http.Header, body []byte, now time.Time) bool {
	id := h.Get("svix-id")
	ts := h.Get("svix-timestamp")
	sigHeader := h.Get("svix-signature")
	if id == "" || ts == "" || sigHeader == "" {
		return false
	}

	unix, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return false
	}
	sent := time.Unix(unix, 0)
	if sent.Before(now.Add(-webhookTolerance)) || sent.After(now.Add(webhookTolerance)) {
		return false
	}

	key, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(secret, "whsec_"))
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(id))
	mac.Write([]byte("."))
	mac.Write([]byte(ts))
	mac.Write([]byte("."))
	mac.Write(body)
	expected := mac.Sum(nil)

	for _, part := range strings.Fields(sigHeader) {
		version, sig, found := strings.Cut(part, ",")
		if !found || version != "v1" {
			continue
		}
		got, err := base64.StdEncoding.DecodeString(sig)
		if err != nil {
			continue
		}
		if hmac.Equal(got, expected) {
			return true
		}
	}
	return false
}
