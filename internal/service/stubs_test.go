package service

import (
	"rawtails/internal/model"
	"rawtails/internal/repository"
)

// Function-field stubs over the repository interfaces. Tests override
// only the calls they care about; everything else returns zero values.

type stubLikeRepo struct {
	createFn       func(like *model.Like) error
	findFn         func(userID, targetType, targetID string) (*model.Like, error)
	deleteFn       func(userID, targetType, targetID string) error
	countFn        func(targetType, targetID string) (int64, error)
	countManyFn    func(targetType string, targetIDs []string) (map[string]int64, error)
	likedTargetsFn func(userID, targetType string, targetIDs []string) (map[string]bool, error)
}

func (s *stubLikeRepo) Create(like *model.Like) error {
	if s.createFn != nil {
		return s.createFn(like)
	}
	return nil
}

func (s *stubLikeRepo) FindByUserAndTarget(userID, targetType, targetID string) (*model.Like, error) {
	if s.findFn != nil {
		return s.findFn(userID, targetType, targetID)
	}
	return nil, nil
}

func (s *stubLikeRepo) DeleteByUserAndTarget(userID, targetType, targetID string) error {
	if s.deleteFn != nil {
		return s.deleteFn(userID, targetType, targetID)
	}
	return nil
}

func (s *stubLikeRepo) CountByTarget(targetType, targetID string) (int64, error) {
	if s.countFn != nil {
		return s.countFn(targetType, targetID)
	}
	return 0, nil
}

func (s *stubLikeRepo) CountByTargets(targetType string, targetIDs []string) (map[string]int64, error) {
	if s.countManyFn != nil {
		return s.countManyFn(targetType, targetIDs)
	}
	return map[string]int64{}, nil
}

func (s *stubLikeRepo) FindUserLikedTargets(userID, targetType string, targetIDs []string) (map[string]bool, error) {
	if s.likedTargetsFn != nil {
		return s.likedTargetsFn(userID, targetType, targetIDs)
	}
	return map[string]bool{}, nil
}

type stubSaveRepo struct {
	createFn       func(save *model.Save) error
	findFn         func(userID, targetType, targetID string) (*model.Save, error)
	deleteFn       func(userID, targetType, targetID string) error
	countFn        func(targetType, targetID string) (int64, error)
	countManyFn    func(targetType string, targetIDs []string) (map[string]int64, error)
	savedTargetsFn func(userID, targetType string, targetIDs []string) (map[string]bool, error)
}

func (s *stubSaveRepo) Create(save *model.Save) error {
	if s.createFn != nil {
		return s.createFn(save)
	}
	return nil
}

func (s *stubSaveRepo) FindByUserAndTarget(userID, targetType, targetID string) (*model.Save, error) {
	if s.findFn != nil {
		return s.findFn(userID, targetType, targetID)
	}
	return nil, nil
}

func (s *stubSaveRepo) DeleteByUserAndTarget(userID, targetType, targetID string) error {
	if s.deleteFn != nil {
		return s.deleteFn(userID, targetType, targetID)
	}
	return nil
}

func (s *stubSaveRepo) CountByTarget(targetType, targetID string) (int64, error) {
	if s.countFn != nil {
		return s.countFn(targetType, targetID)
	}
	return 0, nil
}

func (s *stubSaveRepo) CountByTargets(targetType string, targetIDs []string) (map[string]int64, error) {
	if s.countManyFn != nil {
		return s.countManyFn(targetType, targetIDs)
	}
	return map[string]int64{}, nil
}

func (s *stubSaveRepo) FindUserSavedTargets(userID, targetType string, targetIDs []string) (map[string]bool, error) {
	if s.savedTargetsFn != nil {
		return s.savedTargetsFn(userID, targetType, targetIDs)
	}
	return map[string]bool{}, nil
}

type stubCommentRepo struct {
	createFn       func(comment *model.Comment) error
	findByIDFn     func(id string) (*model.Comment, error)
	findByTargetFn func(targetType, targetID string) ([]*model.Comment, error)
	countFn        func(targetType, targetID string) (int64, error)
	countManyFn    func(targetType string, targetIDs []string) (map[string]int64, error)
}

func (s *stubCommentRepo) Create(comment *model.Comment) error {
	if s.createFn != nil {
		return s.createFn(comment)
	}
	return nil
}

func (s *stubCommentRepo) FindByID(id string) (*model.Comment, error) {
	if s.findByIDFn != nil {
		return s.findByIDFn(id)
	}
	return nil, nil
}

func (s *stubCommentRepo) FindByTarget(targetType, targetID string) ([]*model.Comment, error) {
	if s.findByTargetFn != nil {
		return s.findByTargetFn(targetType, targetID)
	}
	return nil, nil
}

func (s *stubCommentRepo) CountByTarget(targetType, targetID string) (int64, error) {
	if s.countFn != nil {
		return s.countFn(targetType, targetID)
	}
	return 0, nil
}

func (s *stubCommentRepo) CountByTargets(targetType string, targetIDs []string) (map[string]int64, error) {
	if s.countManyFn != nil {
		return s.countManyFn(targetType, targetIDs)
	}
	return map[string]int64{}, nil
}

func (s *stubCommentRepo) Delete(id string) error { return nil }

type stubPostRepo struct {
	createFn   func(post *model.Post) error
	findByIDFn func(id string) (*model.Post, error)
	findAllFn  func(limit, offset int) ([]*model.Post, int64, error)
	deleteFn   func(id string) error
}

func (s *stubPostRepo) Create(post *model.Post) error {
	if s.createFn != nil {
		return s.createFn(post)
	}
	return nil
}

func (s *stubPostRepo) FindByID(id string) (*model.Post, error) {
	if s.findByIDFn != nil {
		return s.findByIDFn(id)
	}
	return nil, nil
}

func (s *stubPostRepo) FindAll(limit, offset int) ([]*model.Post, int64, error) {
	if s.findAllFn != nil {
		return s.findAllFn(limit, offset)
	}
	return nil, 0, nil
}

func (s *stubPostRepo) Delete(id string) error {
	if s.deleteFn != nil {
		return s.deleteFn(id)
	}
	return nil
}

type stubRecipeRepo struct {
	createFn   func(recipe *model.Recipe) error
	findByIDFn func(id string) (*model.Recipe, error)
	findAllFn  func(limit, offset int) ([]*model.Recipe, int64, error)
	updateFn   func(recipe *model.Recipe) error
	deleteFn   func(id string) error
}

func (s *stubRecipeRepo) Create(recipe *model.Recipe) error {
	if s.createFn != nil {
		return s.createFn(recipe)
	}
	return nil
}

func (s *stubRecipeRepo) FindByID(id string) (*model.Recipe, error) {
	if s.findByIDFn != nil {
		return s.findByIDFn(id)
	}
	return nil, nil
}

func (s *stubRecipeRepo) FindAll(limit, offset int) ([]*model.Recipe, int64, error) {
	if s.findAllFn != nil {
		return s.findAllFn(limit, offset)
	}
	return nil, 0, nil
}

func (s *stubRecipeRepo) FindByUserID(userID string, limit, offset int) ([]*model.Recipe, error) {
	return nil, nil
}

func (s *stubRecipeRepo) Update(recipe *model.Recipe) error {
	if s.updateFn != nil {
		return s.updateFn(recipe)
	}
	return nil
}

func (s *stubRecipeRepo) Delete(id string) error {
	if s.deleteFn != nil {
		return s.deleteFn(id)
	}
	return nil
}

type stubStoryRepo struct {
	createFn    func(story *model.SuccessStory) error
	findByIDFn  func(id string) (*model.SuccessStory, error)
	findFn      func(query repository.StoryQuery) ([]*model.SuccessStory, error)
	incrementFn func(id string, delta int) error
}

func (s *stubStoryRepo) Create(story *model.SuccessStory) error {
	if s.createFn != nil {
		return s.createFn(story)
	}
	return nil
}

func (s *stubStoryRepo) FindByID(id string) (*model.SuccessStory, error) {
	if s.findByIDFn != nil {
		return s.findByIDFn(id)
	}
	return nil, nil
}

func (s *stubStoryRepo) Find(query repository.StoryQuery) ([]*model.SuccessStory, error) {
	if s.findFn != nil {
		return s.findFn(query)
	}
	return nil, nil
}

func (s *stubStoryRepo) IncrementLikes(id string, delta int) error {
	if s.incrementFn != nil {
		return s.incrementFn(id, delta)
	}
	return nil
}

// stubEngagement records the events the services fire.
type stubEngagement struct {
	likes    []EngagementEvent
	comments []EngagementEvent
}

func (s *stubEngagement) RecordLike(actorID, ownerID, targetType, targetID string) {
	s.likes = append(s.likes, EngagementEvent{
		Type:       model.NotificationTypeLike,
		ActorID:    actorID,
		OwnerID:    ownerID,
		TargetType: targetType,
		TargetID:   targetID,
	})
}

func (s *stubEngagement) RecordComment(actorID, ownerID, targetType, targetID, commentID string, isReply bool) {
	eventType := model.NotificationTypeComment
	if isReply {
		eventType = model.NotificationTypeReply
	}
	s.comments = append(s.comments, EngagementEvent{
		Type:       eventType,
		ActorID:    actorID,
		OwnerID:    ownerID,
		TargetType: targetType,
		TargetID:   targetID,
		CommentID:  commentID,
	})
}

func (s *stubEngagement) HandleEvent(event EngagementEvent) error { return nil }

func (s *stubEngagement) ListNotifications(userID string, limit, offset int) ([]*model.Notification, int64, error) {
	return nil, 0, nil
}

func (s *stubEngagement) MarkRead(userID, notificationID string) error { return nil }
func (s *stubEngagement) MarkAllRead(userID string) error              { return nil }
