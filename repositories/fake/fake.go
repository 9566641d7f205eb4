// Package fake holds in-memory repositories with the same lookup semantics as
// the gorm ones: misses return gorm.ErrRecordNotFound, soft-deleted users and
// projects are hidden from scoped lookups, and lists are ordered by id.
package fake

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/projectdesk-api/models"
	"gorm.io/gorm"
)

// Store is the shared backing state of every fake repository
type Store struct {
	mu  sync.Mutex
	now func() time.Time

	users    map[uint]models.User
	projects map[uint]models.Project
	members  map[uint]map[uint]bool
	requests map[uint]models.AccessRequest
	repos    map[uint]models.GitRepository
	links    map[uint]models.ProjectLink
	docs     map[uint]models.HelpDocument
	nextID   uint

	requestWrites int

	// DeleteAllErr, when set, is returned by AccessRequests().DeleteAll
	DeleteAllErr error
	// GrantErr, when set, fails the membership step of SaveDecision for grants and rolls it back
	GrantErr error
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		now:      time.Now,
		users:    make(map[uint]models.User),
		projects: make(map[uint]models.Project),
		members:  make(map[uint]map[uint]bool),
		requests: make(map[uint]models.AccessRequest),
		repos:    make(map[uint]models.GitRepository),
		links:    make(map[uint]models.ProjectLink),
		docs:     make(map[uint]models.HelpDocument),
	}
}

// Users returns the user repository
func (s *Store) Users() *Users { return &Users{s: s} }

// Projects returns the project repository
func (s *Store) Projects() *Projects { return &Projects{s: s} }

// AccessRequests returns the access request repository
func (s *Store) AccessRequests() *AccessRequests { return &AccessRequests{s: s} }

// GitRepositories returns the repository record repository
func (s *Store) GitRepositories() *GitRepositories { return &GitRepositories{s: s} }

// Links returns the project link repository
func (s *Store) Links() *Links { return &Links{s: s} }

// Documents returns the help document repository
func (s *Store) Documents() *Documents { return &Documents{s: s} }

// AccessRequestWrites counts creates, saves and clears of access requests
func (s *Store) AccessRequestWrites() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requestWrites
}

// IsMember reports whether userID belongs to projectID
func (s *Store) IsMember(projectID, userID uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.members[projectID][userID]
}

func (s *Store) id() uint {
	s.nextID++
	return s.nextID
}

func (s *Store) deletedAt() gorm.DeletedAt {
	return gorm.DeletedAt{Time: s.now(), Valid: true}
}

func sortedIDs[V any](m map[uint]V) []uint {
	ids := make([]uint, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Users is an in-memory UserRepository
type Users struct{ s *Store }

func (r *Users) find(match func(models.User) bool) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, id := range sortedIDs(r.s.users) {
		u := r.s.users[id]
		if !u.DeletedAt.Valid && match(u) {
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *Users) FindAll(_ context.Context) ([]models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []models.User
	for _, id := range sortedIDs(r.s.users) {
		if u := r.s.users[id]; !u.DeletedAt.Valid {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *Users) FindByID(_ context.Context, id uint) (*models.User, error) {
	return r.find(func(u models.User) bool { return u.ID == id })
}

func (r *Users) FindByEmail(_ context.Context, email string) (*models.User, error) {
	return r.find(func(u models.User) bool { return u.Email == email })
}

func (r *Users) FindByPhone(_ context.Context, phone string) (*models.User, error) {
	return r.find(func(u models.User) bool { return u.PhoneNumber == phone })
}

func (r *Users) FindByToken(_ context.Context, token string) (*models.User, error) {
	return r.find(func(u models.User) bool { return u.Token != nil && *u.Token == token })
}

// ExistsByEmail includes soft-deleted users, like the unique index does
func (r *Users) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *Users) Create(_ context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	user.ID = r.s.id()
	user.CreatedAt = r.s.now()
	user.UpdatedAt = user.CreatedAt
	r.s.users[user.ID] = *user
	return nil
}

func (r *Users) Update(_ context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.users[user.ID] = *user
	return nil
}

func (r *Users) Delete(_ context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if u, ok := r.s.users[id]; ok {
		u.DeletedAt = r.s.deletedAt()
		r.s.users[id] = u
	}
	return nil
}

// Projects is an in-memory ProjectRepository
type Projects struct{ s *Store }

func (r *Projects) FindAll(_ context.Context) ([]models.Project, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []models.Project
	for _, id := range sortedIDs(r.s.projects) {
		if p := r.s.projects[id]; !p.DeletedAt.Valid {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *Projects) FindByID(_ context.Context, id uint) (*models.Project, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.projects[id]
	if !ok || p.DeletedAt.Valid {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func (r *Projects) WithDetails(ctx context.Context, id uint) (*models.Project, error) {
	p, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, uid := range sortedIDs(r.s.members[id]) {
		if u, ok := r.s.users[uid]; ok && !u.DeletedAt.Valid {
			p.Members = append(p.Members, u)
		}
	}
	for _, rid := range sortedIDs(r.s.repos) {
		if repo := r.s.repos[rid]; repo.ProjectID == id {
			p.Repositories = append(p.Repositories, repo)
		}
	}
	for _, lid := range sortedIDs(r.s.links) {
		if link := r.s.links[lid]; link.ProjectID == id {
			p.Links = append(p.Links, link)
		}
	}
	for _, did := range sortedIDs(r.s.docs) {
		if doc := r.s.docs[did]; doc.ProjectID != nil && *doc.ProjectID == id {
			p.Documents = append(p.Documents, doc)
		}
	}
	return p, nil
}

func (r *Projects) Exists(ctx context.Context, id uint) (bool, error) {
	_, err := r.FindByID(ctx, id)
	return err == nil, nil
}

func (r *Projects) Create(_ context.Context, project *models.Project) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	project.ID = r.s.id()
	project.CreatedAt = r.s.now()
	project.UpdatedAt = project.CreatedAt
	stored := *project
	stored.Members, stored.Repositories, stored.Links, stored.Documents = nil, nil, nil, nil
	r.s.projects[project.ID] = stored
	return nil
}

func (r *Projects) Update(_ context.Context, project *models.Project) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored := *project
	stored.Members, stored.Repositories, stored.Links, stored.Documents = nil, nil, nil, nil
	r.s.projects[project.ID] = stored
	return nil
}

func (r *Projects) Delete(_ context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if p, ok := r.s.projects[id]; ok {
		p.DeletedAt = r.s.deletedAt()
		r.s.projects[id] = p
	}
	return nil
}

func (r *Projects) AddMember(_ context.Context, projectID, userID uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.members[projectID] == nil {
		r.s.members[projectID] = make(map[uint]bool)
	}
	r.s.members[projectID][userID] = true
	return nil
}

func (r *Projects) RemoveMember(_ context.Context, projectID, userID uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.members[projectID], userID)
	return nil
}

// AccessRequests is an in-memory AccessRequestRepository
type AccessRequests struct{ s *Store }

// hydrate attaches the user and project the way the gorm preloads do, soft-deleted included.
// Caller holds the lock.
func (r *AccessRequests) hydrate(req models.AccessRequest) models.AccessRequest {
	req.User = r.s.users[req.UserID]
	req.Project = nil
	if req.ProjectID != nil {
		if p, ok := r.s.projects[*req.ProjectID]; ok {
			req.Project = &p
		}
	}
	return req
}

func (r *AccessRequests) list(match func(models.AccessRequest) bool) []models.AccessRequest {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []models.AccessRequest
	for _, id := range sortedIDs(r.s.requests) {
		if req := r.s.requests[id]; match(req) {
			out = append(out, r.hydrate(req))
		}
	}
	return out
}

func (r *AccessRequests) Create(_ context.Context, req *models.AccessRequest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	req.ID = r.s.id()
	req.CreatedAt = r.s.now()
	stored := *req
	stored.User, stored.Project = models.User{}, nil
	r.s.requests[req.ID] = stored
	r.s.requestWrites++
	return nil
}

func (r *AccessRequests) FindAll(_ context.Context) ([]models.AccessRequest, error) {
	return r.list(func(models.AccessRequest) bool { return true }), nil
}

func (r *AccessRequests) FindActive(_ context.Context) ([]models.AccessRequest, error) {
	return r.list(func(req models.AccessRequest) bool {
		u, ok := r.s.users[req.UserID]
		if !ok || u.DeletedAt.Valid {
			return false
		}
		if req.ProjectID == nil {
			return true
		}
		p, ok := r.s.projects[*req.ProjectID]
		return !ok || !p.DeletedAt.Valid
	}), nil
}

func (r *AccessRequests) FindByID(_ context.Context, id uint) (*models.AccessRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	req, ok := r.s.requests[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	req = r.hydrate(req)
	return &req, nil
}

func (r *AccessRequests) FindByPMName(_ context.Context, pmName string) ([]models.AccessRequest, error) {
	return r.list(func(req models.AccessRequest) bool { return req.PMName == pmName }), nil
}

func (r *AccessRequests) FindUnreadByPMName(_ context.Context, pmName string) ([]models.AccessRequest, error) {
	return r.list(func(req models.AccessRequest) bool {
		return req.PMName == pmName && req.Updated && !req.PMNotified
	}), nil
}

func (r *AccessRequests) Save(_ context.Context, req *models.AccessRequest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored := *req
	stored.User, stored.Project = models.User{}, nil
	r.s.requests[req.ID] = stored
	r.s.requestWrites++
	return nil
}

func (r *AccessRequests) SaveDecision(_ context.Context, req *models.AccessRequest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	grant := req.Allowed && req.ProjectID != nil
	if grant && r.s.GrantErr != nil {
		return r.s.GrantErr
	}
	stored := *req
	stored.User, stored.Project = models.User{}, nil
	r.s.requests[req.ID] = stored
	r.s.requestWrites++
	if grant {
		if r.s.members[*req.ProjectID] == nil {
			r.s.members[*req.ProjectID] = make(map[uint]bool)
		}
		r.s.members[*req.ProjectID][req.UserID] = true
	}
	return nil
}

func (r *AccessRequests) DeleteAll(_ context.Context) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.DeleteAllErr != nil {
		return r.s.DeleteAllErr
	}
	r.s.requests = make(map[uint]models.AccessRequest)
	r.s.requestWrites++
	return nil
}

// GitRepositories is an in-memory GitRepositoryRepository
type GitRepositories struct{ s *Store }

func (r *GitRepositories) FindByID(_ context.Context, id uint) (*models.GitRepository, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	repo, ok := r.s.repos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &repo, nil
}

func (r *GitRepositories) FindByProjectID(_ context.Context, projectID uint) ([]models.GitRepository, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []models.GitRepository
	for _, id := range sortedIDs(r.s.repos) {
		if repo := r.s.repos[id]; repo.ProjectID == projectID {
			out = append(out, repo)
		}
	}
	return out, nil
}

func (r *GitRepositories) Create(_ context.Context, repo *models.GitRepository) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	repo.ID = r.s.id()
	repo.CreatedAt = r.s.now()
	r.s.repos[repo.ID] = *repo
	return nil
}

func (r *GitRepositories) Update(_ context.Context, repo *models.GitRepository) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.repos[repo.ID] = *repo
	return nil
}

func (r *GitRepositories) Delete(_ context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.repos, id)
	return nil
}

// Links is an in-memory ProjectLinkRepository
type Links struct{ s *Store }

func (r *Links) FindByID(_ context.Context, id uint) (*models.ProjectLink, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	link, ok := r.s.links[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &link, nil
}

func (r *Links) FindByProject(_ context.Context, projectID uint, kind models.LinkKind) ([]models.ProjectLink, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []models.ProjectLink
	for _, id := range sortedIDs(r.s.links) {
		link := r.s.links[id]
		if link.ProjectID == projectID && (kind == "" || link.Kind == kind) {
			out = append(out, link)
		}
	}
	return out, nil
}

func (r *Links) Create(_ context.Context, link *models.ProjectLink) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	link.ID = r.s.id()
	link.CreatedAt = r.s.now()
	r.s.links[link.ID] = *link
	return nil
}

func (r *Links) Update(_ context.Context, link *models.ProjectLink) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.links[link.ID] = *link
	return nil
}

func (r *Links) Delete(_ context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.links, id)
	return nil
}

// Documents is an in-memory HelpDocumentRepository
type Documents struct{ s *Store }

func (r *Documents) list(match func(models.HelpDocument) bool) []models.HelpDocument {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []models.HelpDocument
	for _, id := range sortedIDs(r.s.docs) {
		if doc := r.s.docs[id]; match(doc) {
			out = append(out, doc)
		}
	}
	return out
}

func (r *Documents) FindAll(_ context.Context) ([]models.HelpDocument, error) {
	return r.list(func(models.HelpDocument) bool { return true }), nil
}

func (r *Documents) FindByProjectID(_ context.Context, projectID uint) ([]models.HelpDocument, error) {
	return r.list(func(d models.HelpDocument) bool {
		return d.ProjectID != nil && *d.ProjectID == projectID
	}), nil
}

func (r *Documents) FindByID(_ context.Context, id uint) (*models.HelpDocument, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	doc, ok := r.s.docs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &doc, nil
}

func (r *Documents) Create(_ context.Context, doc *models.HelpDocument) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	doc.ID = r.s.id()
	doc.CreatedAt = r.s.now()
	r.s.docs[doc.ID] = *doc
	return nil
}

func (r *Documents) Update(_ context.Context, doc *models.HelpDocument) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.docs[doc.ID] = *doc
	return nil
}

func (r *Documents) Delete(_ context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.docs, id)
	return nil
}
