package service

import (
	"context"

	"inkwell/internal/models"
)

// Function-field stubs for the repository interfaces. Tests set only the
// functions they need; anything else returns a zero value.

type postRepoStub struct {
	createFn    func(ctx context.Context, post *models.Post) error
	getByIDFn   func(ctx context.Context, id uint) (*models.Post, error)
	listFn      func(ctx context.Context, filter models.PostFilter, limit, offset int) ([]*models.Post, int64, error)
	updateFn    func(ctx context.Context, post *models.Post) error
	deleteFn    func(ctx context.Context, id uint) error
	incrementFn func(ctx context.Context, id uint) error
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	if s.createFn != nil {
		return s.createFn(ctx, post)
	}
	return nil
}

func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return &models.Post{ID: id}, nil
}

func (s *postRepoStub) List(ctx context.Context, filter models.PostFilter, limit, offset int) ([]*models.Post, int64, error) {
	if s.listFn != nil {
		return s.listFn(ctx, filter, limit, offset)
	}
	return nil, 0, nil
}

func (s *postRepoStub) Update(ctx context.Context, post *models.Post) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, post)
	}
	return nil
}

func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

func (s *postRepoStub) IncrementViewCount(ctx context.Context, id uint) error {
	if s.incrementFn != nil {
		return s.incrementFn(ctx, id)
	}
	return nil
}

type userRepoStub struct {
	listFn       func(ctx context.Context) ([]*models.User, error)
	getByIDFn    func(ctx context.Context, id uint) (*models.User, error)
	getByEmailFn func(ctx context.Context, email string) (*models.User, error)
	createFn     func(ctx context.Context, user *models.User) error
	updateFn     func(ctx context.Context, user *models.User) error
	deleteFn     func(ctx context.Context, id uint) error
}

func (s *userRepoStub) List(ctx context.Context) ([]*models.User, error) {
	if s.listFn != nil {
		return s.listFn(ctx)
	}
	return nil, nil
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return &models.User{ID: id}, nil
}

func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if s.getByEmailFn != nil {
		return s.getByEmailFn(ctx, email)
	}
	return nil, nil
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	if s.createFn != nil {
		return s.createFn(ctx, user)
	}
	return nil
}

func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, user)
	}
	return nil
}

func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

type categoryRepoStub struct {
	listFn      func(ctx context.Context) ([]*models.Category, error)
	getByIDFn   func(ctx context.Context, id uint) (*models.Category, error)
	getByNameFn func(ctx context.Context, name string) (*models.Category, error)
	createFn    func(ctx context.Context, category *models.Category) error
	updateFn    func(ctx context.Context, category *models.Category) error
	deleteFn    func(ctx context.Context, id uint) error
}

func (s *categoryRepoStub) List(ctx context.Context) ([]*models.Category, error) {
	if s.listFn != nil {
		return s.listFn(ctx)
	}
	return nil, nil
}

func (s *categoryRepoStub) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return &models.Category{ID: id}, nil
}

func (s *categoryRepoStub) GetByName(ctx context.Context, name string) (*models.Category, error) {
	if s.getByNameFn != nil {
		return s.getByNameFn(ctx, name)
	}
	return nil, nil
}

func (s *categoryRepoStub) Create(ctx context.Context, category *models.Category) error {
	if s.createFn != nil {
		return s.createFn(ctx, category)
	}
	return nil
}

func (s *categoryRepoStub) Update(ctx context.Context, category *models.Category) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, category)
	}
	return nil
}

func (s *categoryRepoStub) Delete(ctx context.Context, id uint) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

type tagRepoStub struct {
	listFn           func(ctx context.Context) ([]*models.Tag, error)
	getByIDFn        func(ctx context.Context, id uint) (*models.Tag, error)
	getByNameFn      func(ctx context.Context, name string) (*models.Tag, error)
	createFn         func(ctx context.Context, tag *models.Tag) error
	updateFn         func(ctx context.Context, tag *models.Tag) error
	deleteFn         func(ctx context.Context, id uint) error
	listByPostFn     func(ctx context.Context, postID uint) ([]models.Tag, error)
	countByIDsFn     func(ctx context.Context, ids []uint) (int64, error)
	replaceForPostFn func(ctx context.Context, postID uint, tagIDs []uint) ([]models.Tag, error)
}

func (s *tagRepoStub) List(ctx context.Context) ([]*models.Tag, error) {
	if s.listFn != nil {
		return s.listFn(ctx)
	}
	return nil, nil
}

func (s *tagRepoStub) GetByID(ctx context.Context, id uint) (*models.Tag, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return &models.Tag{ID: id}, nil
}

func (s *tagRepoStub) GetByName(ctx context.Context, name string) (*models.Tag, error) {
	if s.getByNameFn != nil {
		return s.getByNameFn(ctx, name)
	}
	return nil, nil
}

func (s *tagRepoStub) Create(ctx context.Context, tag *models.Tag) error {
	if s.createFn != nil {
		return s.createFn(ctx, tag)
	}
	return nil
}

func (s *tagRepoStub) Update(ctx context.Context, tag *models.Tag) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, tag)
	}
	return nil
}

func (s *tagRepoStub) Delete(ctx context.Context, id uint) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

func (s *tagRepoStub) ListByPost(ctx context.Context, postID uint) ([]models.Tag, error) {
	if s.listByPostFn != nil {
		return s.listByPostFn(ctx, postID)
	}
	return nil, nil
}

func (s *tagRepoStub) CountByIDs(ctx context.Context, ids []uint) (int64, error) {
	if s.countByIDsFn != nil {
		return s.countByIDsFn(ctx, ids)
	}
	return int64(len(ids)), nil
}

func (s *tagRepoStub) ReplaceForPost(ctx context.Context, postID uint, tagIDs []uint) ([]models.Tag, error) {
	if s.replaceForPostFn != nil {
		return s.replaceForPostFn(ctx, postID, tagIDs)
	}
	return nil, nil
}

type commentRepoStub struct {
	listTopLevelFn func(ctx context.Context, postID uint) ([]*models.Comment, error)
	listByAuthorFn func(ctx context.Context, authorID uint) ([]*models.Comment, error)
	getByIDFn      func(ctx context.Context, id uint) (*models.Comment, error)
	createFn       func(ctx context.Context, comment *models.Comment) error
	updateFn       func(ctx context.Context, comment *models.Comment) error
	deleteFn       func(ctx context.Context, id uint) error
}

func (s *commentRepoStub) ListTopLevelByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	if s.listTopLevelFn != nil {
		return s.listTopLevelFn(ctx, postID)
	}
	return nil, nil
}

func (s *commentRepoStub) ListByAuthor(ctx context.Context, authorID uint) ([]*models.Comment, error) {
	if s.listByAuthorFn != nil {
		return s.listByAuthorFn(ctx, authorID)
	}
	return nil, nil
}

func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return &models.Comment{ID: id}, nil
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	if s.createFn != nil {
		return s.createFn(ctx, comment)
	}
	return nil
}

func (s *commentRepoStub) Update(ctx context.Context, comment *models.Comment) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, comment)
	}
	return nil
}

func (s *commentRepoStub) Delete(ctx context.Context, id uint) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

type metadataRepoStub struct {
	getByPostFn    func(ctx context.Context, postID uint) (*models.PostMetadata, error)
	upsertFn       func(ctx context.Context, meta *models.PostMetadata) error
	deleteByPostFn func(ctx context.Context, postID uint) error
}

func (s *metadataRepoStub) GetByPost(ctx context.Context, postID uint) (*models.PostMetadata, error) {
	if s.getByPostFn != nil {
		return s.getByPostFn(ctx, postID)
	}
	return &models.PostMetadata{PostID: postID}, nil
}

func (s *metadataRepoStub) Upsert(ctx context.Context, meta *models.PostMetadata) error {
	if s.upsertFn != nil {
		return s.upsertFn(ctx, meta)
	}
	return nil
}

func (s *metadataRepoStub) DeleteByPost(ctx context.Context, postID uint) error {
	if s.deleteByPostFn != nil {
		return s.deleteByPostFn(ctx, postID)
	}
	return nil
}
