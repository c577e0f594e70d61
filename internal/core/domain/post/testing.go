package post

import (
	c "blogapi/internal/core/domain/common"
	"context"
	"fmt"
	"sort"
	"sync"
)

type FakeRepository struct {
	Posts       []Post
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{Posts: make([]Post, 0, 10)}
}

func (r *FakeRepository) Create(ctx context.Context, input CreateInput) (p Post, err error) {
	if r.ReturnError {
		return p, fmt.Errorf("could not create post %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	maxID := ID(0)
	for _, p := range r.Posts {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	p = Post{
		ID:        maxID + 1,
		AuthorID:  input.AuthorID,
		Title:     input.Title,
		Content:   input.Content,
		CreatedAt: input.CreatedAt,
	}
	r.Posts = append(r.Posts, p)
	return p, nil
}

func (r *FakeRepository) GetByID(ctx context.Context, id ID) (p Post, err error) {
	if r.ReturnError {
		return p, fmt.Errorf("could not get post %d", id)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, p := range r.Posts {
		if p.ID == id {
			return p, nil
		}
	}
	return p, ErrPostDoesNotExist
}

func (r *FakeRepository) GetByIDForUpdate(ctx context.Context, id ID) (Post, error) {
	return r.GetByID(ctx, id)
}

func (r *FakeRepository) Read(ctx context.Context, options ReadOptions) ([]Post, error) {
	if r.ReturnError {
		return nil, fmt.Errorf("could not read posts")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	posts := make([]Post, len(r.Posts))
	copy(posts, r.Posts)
	sort.Slice(posts, func(i, j int) bool { return posts[i].ID > posts[j].ID })
	if options.Offset >= uint(len(posts)) {
		return []Post{}, nil
	}
	posts = posts[options.Offset:]
	if options.Limit < uint(len(posts)) {
		posts = posts[:options.Limit]
	}
	return posts, nil
}

func (r *FakeRepository) Count(ctx context.Context) (uint, error) {
	if r.ReturnError {
		return 0, fmt.Errorf("could not count posts")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	return uint(len(r.Posts)), nil
}

func (r *FakeRepository) Update(ctx context.Context, input UpdateInput) (p Post, err error) {
	if r.ReturnError {
		return p, fmt.Errorf("could not update post %d", input.ID)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, p := range r.Posts {
		if p.ID == input.ID {
			r.Posts[ix].Title = input.Title
			r.Posts[ix].Content = input.Content
			r.Posts[ix].UpdatedAt = c.NewOptional(input.UpdatedAt, true)
			return r.Posts[ix], nil
		}
	}
	return p, ErrPostDoesNotExist
}

func (r *FakeRepository) Delete(ctx context.Context, id ID) error {
	if r.ReturnError {
		return fmt.Errorf("could not delete post %d", id)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, p := range r.Posts {
		if p.ID == id {
			r.Posts = append(r.Posts[:ix], r.Posts[ix+1:]...)
			return nil
		}
	}
	return ErrPostDoesNotExist
}

type FakeEventPublisher struct {
	Published   []Event
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeEventPublisher() *FakeEventPublisher {
	return &FakeEventPublisher{}
}

func (p *FakeEventPublisher) Publish(ctx context.Context, event Event) error {
	if p.ReturnError {
		return fmt.Errorf("could not publish event %s", event.Type)
	}
	p.lock.Lock()
	defer p.lock.Unlock()
	p.Published = append(p.Published, event)
	return nil
}

func (p *FakeEventPublisher) Last() Event {
	p.lock.Lock()
	defer p.lock.Unlock()
	l := len(p.Published)
	if l == 0 {
		panic("Published count is 0.")
	}
	return p.Published[l-1]
}
