package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/sounddesk/client-portal/internal/core/domain"
	"github.com/sounddesk/client-portal/internal/core/ports"
)

// In-memory fakes for the repository and counter ports, shared by the
// service tests.

type stubClientRepo struct {
	seq     int64
	clients []*domain.Client
	nextID  int
}

func newStubClientRepo() *stubClientRepo {
	return &stubClientRepo{}
}

func cloneClient(c *domain.Client) *domain.Client {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}

func (r *stubClientRepo) Create(_ context.Context, client *domain.Client) (*domain.Client, error) {
	for _, existing := range r.clients {
		if existing.Email == client.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	r.nextID++
	created := cloneClient(client)
	created.ID = fmt.Sprintf("client_%d", r.nextID)
	r.clients = append(r.clients, created)
	return cloneClient(created), nil
}

func (r *stubClientRepo) FindByEmail(_ context.Context, email string) (*domain.Client, error) {
	for _, c := range r.clients {
		if c.Email == email {
			return cloneClient(c), nil
		}
	}
	return nil, domain.ErrClientNotFound
}

func (r *stubClientRepo) FindByID(_ context.Context, id string) (*domain.Client, error) {
	for _, c := range r.clients {
		if c.ID == id {
			return cloneClient(c), nil
		}
	}
	return nil, domain.ErrClientNotFound
}

func (r *stubClientRepo) FindAdmin(_ context.Context) (*domain.Client, error) {
	for _, c := range r.clients {
		if c.IsAdmin {
			return cloneClient(c), nil
		}
	}
	return nil, domain.ErrAdminNotFound
}

func (r *stubClientRepo) FindByProjectID(_ context.Context, projectID string) (*domain.Client, error) {
	for _, c := range r.clients {
		if c.ProjectID == projectID {
			return cloneClient(c), nil
		}
	}
	return nil, domain.ErrClientNotFound
}

func (r *stubClientRepo) ListClients(_ context.Context) ([]domain.Client, error) {
	var out []domain.Client
	for _, c := range r.clients {
		if !c.IsAdmin {
			out = append(out, *cloneClient(c))
		}
	}
	return out, nil
}

func (r *stubClientRepo) NextSignupSeq(_ context.Context) (int64, error) {
	r.seq++
	return r.seq, nil
}

func (r *stubClientRepo) SetProject(_ context.Context, clientID, projectID string) error {
	for _, c := range r.clients {
		if c.ID == clientID {
			c.ProjectID = projectID
			return nil
		}
	}
	return domain.ErrClientNotFound
}

func (r *stubClientRepo) DeleteAll(_ context.Context) error {
	r.clients = nil
	r.seq = 0
	return nil
}

type stubProjectRepo struct {
	projects map[string]*domain.Project
	nextID   int
}

func newStubProjectRepo() *stubProjectRepo {
	return &stubProjectRepo{projects: make(map[string]*domain.Project)}
}

func cloneProject(p *domain.Project) *domain.Project {
	if p == nil {
		return nil
	}
	clone := *p
	return &clone
}

func (r *stubProjectRepo) Create(_ context.Context, project *domain.Project) (*domain.Project, error) {
	r.nextID++
	created := cloneProject(project)
	created.ID = fmt.Sprintf("project_%d", r.nextID)
	if created.Version == 0 {
		created.Version = 1
	}
	r.projects[created.ID] = created
	return cloneProject(created), nil
}

func (r *stubProjectRepo) FindByID(_ context.Context, id string) (*domain.Project, error) {
	p, ok := r.projects[id]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	return cloneProject(p), nil
}

func (r *stubProjectRepo) FindNamesByIDs(_ context.Context, ids []string) (map[string]string, error) {
	names := make(map[string]string, len(ids))
	for _, id := range ids {
		if p, ok := r.projects[id]; ok {
			names[id] = p.Name
		}
	}
	return names, nil
}

func (r *stubProjectRepo) Update(_ context.Context, id string, patch ports.ProjectPatch) (*domain.Project, error) {
	p, ok := r.projects[id]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	if patch.Version != nil && *patch.Version != p.Version {
		return nil, domain.ErrVersionConflict
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Active != nil {
		p.Active = *patch.Active
	}
	if patch.Scope != nil {
		p.Scope = *patch.Scope
	}
	if patch.Production != nil {
		p.Production = *patch.Production
	}
	if patch.Visual != nil {
		p.Visual = *patch.Visual
	}
	if patch.Release != nil {
		p.Release = *patch.Release
	}
	p.Version++
	return cloneProject(p), nil
}

func (r *stubProjectRepo) DeleteAll(_ context.Context) error {
	r.projects = make(map[string]*domain.Project)
	return nil
}

type stubMessageRepo struct {
	msgs   []domain.Message
	nextID int
}

func newStubMessageRepo() *stubMessageRepo {
	return &stubMessageRepo{}
}

func (r *stubMessageRepo) Create(_ context.Context, msg *domain.Message) (*domain.Message, error) {
	r.nextID++
	created := *msg
	created.ID = fmt.Sprintf("msg_%d", r.nextID)
	r.msgs = append(r.msgs, created)
	return &created, nil
}

func (r *stubMessageRepo) FindConversation(_ context.Context, a, b string) ([]domain.Message, error) {
	var out []domain.Message
	for _, m := range r.msgs {
		if (m.SenderID == a && m.ReceiverID == b) || (m.SenderID == b && m.ReceiverID == a) {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *stubMessageRepo) MarkRead(_ context.Context, receiverID, senderID string) error {
	for i := range r.msgs {
		if r.msgs[i].SenderID == senderID && r.msgs[i].ReceiverID == receiverID {
			r.msgs[i].Read = true
		}
	}
	return nil
}

func (r *stubMessageRepo) DeleteAll(_ context.Context) error {
	r.msgs = nil
	return nil
}

type stubUnread struct {
	counts map[string]int64
}

func newStubUnread() *stubUnread {
	return &stubUnread{counts: make(map[string]int64)}
}

func (u *stubUnread) key(receiverID, senderID string) string {
	return receiverID + ":" + senderID
}

func (u *stubUnread) Incr(_ context.Context, receiverID, senderID string) error {
	u.counts[u.key(receiverID, senderID)]++
	return nil
}

func (u *stubUnread) Count(_ context.Context, receiverID, senderID string) (int64, error) {
	return u.counts[u.key(receiverID, senderID)], nil
}

func (u *stubUnread) Reset(_ context.Context, receiverID, senderID string) error {
	delete(u.counts, u.key(receiverID, senderID))
	return nil
}
