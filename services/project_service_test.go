package services

import (
	"context"
	"testing"

	"github.com/projectdesk-api/dto"
	"github.com/projectdesk-api/models"
	"github.com/projectdesk-api/repositories/fake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectService_MembersAndDetail(t *testing.T) {
	store := fake.NewStore()
	ctx := context.Background()
	projects := NewProjectService(store.Projects(), store.Users())
	resources := NewResourceService(store.Projects(), store.GitRepositories(), store.Links(), store.Documents())

	user := models.User{Name: "alice", Email: "alice@example.com"}
	require.NoError(t, store.Users().Create(ctx, &user))

	created, err := projects.CreateProject(ctx, dto.CreateProjectRequest{Name: "Apollo", Description: "moon"})
	require.NoError(t, err)

	require.NoError(t, projects.AddMember(ctx, created.ID, user.ID))
	assert.ErrorIs(t, projects.AddMember(ctx, created.ID, 999), ErrUserNotFound)
	assert.ErrorIs(t, projects.AddMember(ctx, 999, user.ID), ErrProjectNotFound)

	_, err = resources.AddRepository(ctx, created.ID, dto.GitRepositoryRequest{URL: "https://github.com/acme/apollo.git"})
	require.NoError(t, err)
	_, err = resources.AddLink(ctx, created.ID, dto.ProjectLinkRequest{Kind: "FIGMA", Title: "Mockups", URL: "https://figma.com/file/abc"})
	require.NoError(t, err)
	pid := created.ID
	_, err = resources.CreateDocument(ctx, dto.HelpDocumentRequest{ProjectID: &pid, Title: "Onboarding"})
	require.NoError(t, err)

	detail, err := projects.GetProjectDetail(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Apollo", detail.Name)
	require.Len(t, detail.Members, 1)
	assert.Equal(t, "alice", detail.Members[0].Name)
	require.Len(t, detail.Repositories, 1)
	assert.Equal(t, "acme", detail.Repositories[0].Owner)
	assert.Equal(t, "apollo", detail.Repositories[0].Name)
	assert.Len(t, detail.Links, 1)
	assert.Len(t, detail.Documents, 1)

	require.NoError(t, projects.RemoveMember(ctx, created.ID, user.ID))
	assert.False(t, store.IsMember(created.ID, user.ID))

	require.NoError(t, projects.DeleteProject(ctx, created.ID))
	_, err = projects.GetProjectDetail(ctx, created.ID)
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestResourceService_Links(t *testing.T) {
	store := fake.NewStore()
	ctx := context.Background()
	resources := NewResourceService(store.Projects(), store.GitRepositories(), store.Links(), store.Documents())

	project := models.Project{Name: "Apollo"}
	require.NoError(t, store.Projects().Create(ctx, &project))

	_, err := resources.AddLink(ctx, project.ID, dto.ProjectLinkRequest{Kind: "FIGMA", URL: "https://figma.com/file/a"})
	require.NoError(t, err)
	_, err = resources.AddLink(ctx, project.ID, dto.ProjectLinkRequest{Kind: "DRIVE", URL: "https://drive.google.com/x"})
	require.NoError(t, err)

	all, err := resources.ListLinks(ctx, project.ID, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	figma, err := resources.ListLinks(ctx, project.ID, "FIGMA")
	require.NoError(t, err)
	require.Len(t, figma, 1)
	assert.Equal(t, "FIGMA", figma[0].Kind)

	_, err = resources.ListLinks(ctx, project.ID, "DROPBOX")
	assert.ErrorIs(t, err, ErrInvalidLinkKind)

	_, err = resources.ListLinks(ctx, 999, "")
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestResourceService_RepositoryURL(t *testing.T) {
	store := fake.NewStore()
	ctx := context.Background()
	resources := NewResourceService(store.Projects(), store.GitRepositories(), store.Links(), store.Documents())

	project := models.Project{Name: "Apollo"}
	require.NoError(t, store.Projects().Create(ctx, &project))

	_, err := resources.AddRepository(ctx, project.ID, dto.GitRepositoryRequest{URL: "https://github.com/"})
	assert.ErrorIs(t, err, ErrInvalidRepositoryURL)

	repo, err := resources.AddRepository(ctx, project.ID, dto.GitRepositoryRequest{Owner: "fork", URL: "https://github.com/acme/apollo"})
	require.NoError(t, err)
	assert.Equal(t, "fork", repo.Owner)
	assert.Equal(t, "apollo", repo.Name)

	_, err = resources.AddRepository(ctx, project.ID, dto.GitRepositoryRequest{Owner: "acme", Name: "apollo", URL: "https://gitlab.com/acme/apollo"})
	assert.ErrorIs(t, err, ErrInvalidRepositoryURL)

	_, err = resources.UpdateRepository(ctx, repo.ID, dto.GitRepositoryRequest{URL: "https://bitbucket.org/acme/apollo"})
	assert.ErrorIs(t, err, ErrInvalidRepositoryURL)

	err = resources.DeleteRepository(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}
