package service

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/iliyamo/expo-management/internal/metrics"
	"github.com/iliyamo/expo-management/internal/model"
	"github.com/iliyamo/expo-management/internal/policy"
	"github.com/iliyamo/expo-management/internal/queue"
)

// Cascade step names, recorded in the intent log as they complete.
const (
	StepSessionRosters   = "session_rosters"
	StepExpoRosters      = "expo_rosters"
	StepFeedback         = "feedback"
	StepMessages         = "messages"
	StepBookmarks        = "bookmarks"
	StepExhibitorProfile = "exhibitor_profile"
	StepUser             = "user"
	StepRefreshTokens    = "refresh_tokens"
	StepBooths           = "booths"
	StepExhibitor        = "exhibitor"
	StepRegistrations    = "registrations"
	StepSession          = "session"
)

type step struct {
	name string
	run  func(ctx context.Context) error
	// bestEffort steps log their failure instead of interrupting the cascade.
	bestEffort bool
}

// removeUser records the intent to delete u and runs the user cascade.
// The registration lists are captured now since the user document is
// removed part way through.
func (s *Service) removeUser(ctx context.Context, actor policy.Actor, u *model.User, purgeProfile bool) error {
	in := &model.CascadeIntent{
		Kind:               model.CascadeUser,
		TargetID:           u.ID,
		PurgeProfile:       purgeProfile,
		RegisteredExpos:    append([]primitive.ObjectID(nil), u.RegisteredExpos...),
		RegisteredSessions: append([]primitive.ObjectID(nil), u.RegisteredSessions...),
	}
	return s.startCascade(ctx, actor, in)
}

func (s *Service) removeExhibitor(ctx context.Context, actor policy.Actor, x *model.Exhibitor) error {
	return s.startCascade(ctx, actor, &model.CascadeIntent{Kind: model.CascadeExhibitor, TargetID: x.ID})
}

func (s *Service) removeSession(ctx context.Context, actor policy.Actor, sess *model.Session) error {
	return s.startCascade(ctx, actor, &model.CascadeIntent{Kind: model.CascadeSession, TargetID: sess.ID})
}

func (s *Service) startCascade(ctx context.Context, actor policy.Actor, in *model.CascadeIntent) error {
	in.CreatedAt = s.now()
	in.Completed = []string{}
	if err := s.exec(ctx, "cascade intent", func(ctx context.Context) error {
		return s.store.Intents.Insert(ctx, in)
	}); err != nil {
		return err
	}
	return s.runCascade(ctx, actor, in, false)
}

func (s *Service) steps(in *model.CascadeIntent) []step {
	id := in.TargetID
	switch in.Kind {
	case model.CascadeUser:
		steps := []step{
			{name: StepSessionRosters, run: func(ctx context.Context) error {
				if len(in.RegisteredSessions) == 0 {
					return nil
				}
				return s.exec(ctx, "session", func(ctx context.Context) error {
					return s.store.Sessions.PullAttendee(ctx, in.RegisteredSessions, id)
				})
			}},
			{name: StepExpoRosters, run: func(ctx context.Context) error {
				if len(in.RegisteredExpos) == 0 {
					return nil
				}
				return s.exec(ctx, "expo", func(ctx context.Context) error {
					return s.store.Expos.PullExhibitor(ctx, in.RegisteredExpos, id)
				})
			}},
			{name: StepFeedback, run: func(ctx context.Context) error {
				return s.exec(ctx, "feedback", func(ctx context.Context) error {
					_, err := s.store.Feedback.DeleteByUser(ctx, id)
					return err
				})
			}},
			{name: StepMessages, run: func(ctx context.Context) error {
				return s.exec(ctx, "message", func(ctx context.Context) error {
					_, err := s.store.Messages.DeleteByParticipant(ctx, id)
					return err
				})
			}},
			{name: StepBookmarks, run: func(ctx context.Context) error {
				return s.exec(ctx, "bookmark", func(ctx context.Context) error {
					_, err := s.store.Bookmarks.DeleteByUser(ctx, id)
					return err
				})
			}},
		}
		if in.PurgeProfile {
			steps = append(steps, step{name: StepExhibitorProfile, run: func(ctx context.Context) error {
				return s.purgeProfileOf(ctx, id)
			}})
		}
		return append(steps,
			step{name: StepUser, run: func(ctx context.Context) error {
				err := s.exec(ctx, "user", func(ctx context.Context) error { return s.store.Users.Delete(ctx, id) })
				if isNotFound(err) {
					return nil
				}
				return err
			}},
			step{name: StepRefreshTokens, bestEffort: true, run: func(ctx context.Context) error {
				return s.exec(ctx, "refresh token", func(ctx context.Context) error {
					return s.tokens.RevokeAllForUser(ctx, id.Hex())
				})
			}},
		)
	case model.CascadeExhibitor:
		return []step{
			{name: StepBooths, run: func(ctx context.Context) error {
				return s.exec(ctx, "booth", func(ctx context.Context) error {
					_, err := s.store.Booths.ReleaseByExhibitor(ctx, id)
					return err
				})
			}},
			{name: StepExhibitor, run: func(ctx context.Context) error {
				err := s.exec(ctx, "exhibitor", func(ctx context.Context) error { return s.store.Exhibitors.Delete(ctx, id) })
				if isNotFound(err) {
					return nil
				}
				return err
			}},
		}
	case model.CascadeSession:
		return []step{
			{name: StepBookmarks, run: func(ctx context.Context) error {
				return s.exec(ctx, "bookmark", func(ctx context.Context) error {
					_, err := s.store.Bookmarks.DeleteBySession(ctx, id)
					return err
				})
			}},
			{name: StepRegistrations, run: func(ctx context.Context) error {
				return s.exec(ctx, "user", func(ctx context.Context) error {
					_, err := s.store.Users.PullRegistration(ctx, model.RegisteredSessions, id)
					return err
				})
			}},
			{name: StepSession, run: func(ctx context.Context) error {
				err := s.exec(ctx, "session", func(ctx context.Context) error { return s.store.Sessions.Delete(ctx, id) })
				if isNotFound(err) {
					return nil
				}
				return err
			}},
		}
	}
	return nil
}

// purgeProfileOf releases the booths of the user's exhibitor profile and
// deletes the profile.  Users without a profile are a no-op.
func (s *Service) purgeProfileOf(ctx context.Context, userID primitive.ObjectID) error {
	x, err := query(ctx, s, "exhibitor", func(ctx context.Context) (*model.Exhibitor, error) {
		return s.store.Exhibitors.FindByUserID(ctx, userID)
	})
	if isNotFound(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := s.exec(ctx, "booth", func(ctx context.Context) error {
		_, err := s.store.Booths.ReleaseByExhibitor(ctx, x.ID)
		return err
	}); err != nil {
		return err
	}
	err = s.exec(ctx, "exhibitor", func(ctx context.Context) error { return s.store.Exhibitors.Delete(ctx, x.ID) })
	if isNotFound(err) {
		return nil
	}
	return err
}

// runCascade executes the steps of in that are not yet recorded as
// completed.  When a step fails after earlier ones were applied the intent
// is kept and an *IntegrityWarning is returned.
func (s *Service) runCascade(ctx context.Context, actor policy.Actor, in *model.CascadeIntent, resumed bool) error {
	kind := string(in.Kind)
	done := make(map[string]bool, len(in.Completed))
	for _, name := range in.Completed {
		done[name] = true
	}
	completed := append([]string{}, in.Completed...)

	for _, st := range s.steps(in) {
		if done[st.name] {
			continue
		}
		if err := st.run(ctx); err != nil {
			if st.bestEffort {
				s.log.Warn().Err(err).Str("cascade", kind).Str("target", in.TargetID.Hex()).Str("step", st.name).Msg("best-effort cascade step failed")
			} else {
				return s.cascadeFailed(ctx, actor, in, completed, st.name, err, resumed)
			}
		}
		completed = append(completed, st.name)
		if err := s.exec(ctx, "cascade intent", func(ctx context.Context) error {
			return s.store.Intents.MarkStep(ctx, in.ID, st.name)
		}); err != nil {
			s.log.Warn().Err(err).Str("cascade", kind).Str("step", st.name).Msg("record cascade step failed")
		}
	}

	s.dropIntent(ctx, in)
	outcome := metrics.OutcomeCompleted
	if resumed {
		outcome = metrics.OutcomeResumed
	}
	s.metrics.IncCascade(kind, outcome)
	s.publish(ctx, queue.NewEvent(removedEvent(in.Kind), in.TargetID.Hex(), actorID(actor), nil))
	return nil
}

func (s *Service) cascadeFailed(ctx context.Context, actor policy.Actor, in *model.CascadeIntent, completed []string, failed string, err error, resumed bool) error {
	kind := string(in.Kind)
	if len(completed) == 0 && !resumed {
		// nothing was applied: the removal simply did not happen
		s.dropIntent(ctx, in)
		s.metrics.IncCascade(kind, metrics.OutcomeFailed)
		return err
	}
	w := &IntegrityWarning{
		Op:        "remove " + kind,
		TargetID:  in.TargetID,
		Completed: completed,
		Failed:    failed,
		Err:       err,
	}
	s.metrics.IncCascade(kind, metrics.OutcomePartial)
	s.log.Error().Err(err).
		Str("cascade", kind).
		Str("target", in.TargetID.Hex()).
		Strs("completed", completed).
		Str("failed", failed).
		Msg("cascade partially applied; intent kept for resume")
	s.publish(ctx, queue.NewEvent(queue.EventCascadePartial, in.TargetID.Hex(), actorID(actor),
		map[string]string{"kind": kind, "failed": failed}))
	return w
}

func (s *Service) dropIntent(ctx context.Context, in *model.CascadeIntent) {
	if err := s.exec(ctx, "cascade intent", func(ctx context.Context) error {
		return s.store.Intents.Delete(ctx, in.ID)
	}); err != nil && !isNotFound(err) {
		s.log.Warn().Err(err).Str("intent", in.ID.Hex()).Msg("drop cascade intent failed")
	}
}

func removedEvent(k model.CascadeKind) string {
	switch k {
	case model.CascadeExhibitor:
		return queue.EventExhibitorRemoved
	case model.CascadeSession:
		return queue.EventSessionRemoved
	}
	return queue.EventUserRemoved
}

// ResumePendingCascades finishes every cascade left in the intent log by
// an interrupted process and reports how many completed.
func (s *Service) ResumePendingCascades(ctx context.Context) (int, error) {
	pending, err := query(ctx, s, "cascade intent", func(ctx context.Context) ([]*model.CascadeIntent, error) {
		return s.store.Intents.ListPending(ctx)
	})
	if err != nil {
		return 0, err
	}
	var (
		n    int
		errs []error
	)
	for _, in := range pending {
		s.log.Warn().Str("cascade", string(in.Kind)).Str("target", in.TargetID.Hex()).
			Strs("completed", in.Completed).Msg("resuming interrupted cascade")
		if err := s.runCascade(ctx, policy.Anonymous, in, true); err != nil {
			errs = append(errs, fmt.Errorf("resume %s %s: %w", in.Kind, in.TargetID.Hex(), err))
			continue
		}
		n++
	}
	return n, errors.Join(errs...)
}
