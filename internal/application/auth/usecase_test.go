package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loja-backend/loja-api/internal/application/auth"
	"github.com/loja-backend/loja-api/internal/application/dto"
	"github.com/loja-backend/loja-api/internal/domain"
	"github.com/loja-backend/loja-api/internal/domain/entity"
	pkgjwt "github.com/loja-backend/loja-api/pkg/jwt"
)

type fakeUsuarioRepo struct {
	porID    map[string]*entity.Usuario
	porEmail map[string]*entity.Usuario
}

func newFakeUsuarioRepo() *fakeUsuarioRepo {
	return &fakeUsuarioRepo{
		porID:    make(map[string]*entity.Usuario),
		porEmail: make(map[string]*entity.Usuario),
	}
}

func (r *fakeUsuarioRepo) Create(u *entity.Usuario) error {
	if _, ok := r.porEmail[u.Email]; ok {
		return domain.ErrEmailJaCadastrado
	}
	cp := *u
	r.porID[u.ID] = &cp
	r.porEmail[u.Email] = &cp
	return nil
}
func (r *fakeUsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	u, ok := r.porID[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}
func (r *fakeUsuarioRepo) GetByEmail(email string) (*entity.Usuario, error) {
	u, ok := r.porEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}
func (r *fakeUsuarioRepo) List(limit, offset int) ([]*entity.Usuario, error) { return nil, nil }
func (r *fakeUsuarioRepo) Update(u *entity.Usuario) error                    { return nil }
func (r *fakeUsuarioRepo) Delete(id string) error                            { return nil }

var testJWTCfg = auth.JWTConfig{
	Secret:     "test-secret-key-for-unit-tests",
	ExpMinutes: 60,
	Issuer:     "loja-api-test",
}

func TestRegistrar_CriaUsuarioComHash(t *testing.T) {
	repo := newFakeUsuarioRepo()
	uc := auth.NewAuthUseCase(repo, testJWTCfg)

	out, err := uc.Registrar(dto.RegistroRequest{
		Nome:  "Maria",
		Email: "maria@example.com",
		Senha: "segredo123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "maria@example.com", out.Email)

	persisted := repo.porEmail["maria@example.com"]
	require.NotNil(t, persisted)
	assert.NotEqual(t, "segredo123", persisted.SenhaHash, "a senha nunca é persistida em claro")
	assert.NotEmpty(t, persisted.SenhaHash)
}

func TestRegistrar_EmailDuplicado(t *testing.T) {
	repo := newFakeUsuarioRepo()
	uc := auth.NewAuthUseCase(repo, testJWTCfg)

	_, err := uc.Registrar(dto.RegistroRequest{Nome: "Maria", Email: "maria@example.com", Senha: "segredo123"})
	require.NoError(t, err)

	_, err = uc.Registrar(dto.RegistroRequest{Nome: "Outra", Email: "maria@example.com", Senha: "outra123"})
	require.ErrorIs(t, err, domain.ErrEmailJaCadastrado)
}

func TestLogin_EmiteTokenValido(t *testing.T) {
	repo := newFakeUsuarioRepo()
	uc := auth.NewAuthUseCase(repo, testJWTCfg)

	reg, err := uc.Registrar(dto.RegistroRequest{Nome: "Maria", Email: "maria@example.com", Senha: "segredo123"})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "maria@example.com", Senha: "segredo123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, reg.ID, out.Usuario.ID)

	userID, email, err := pkgjwt.Parse(testJWTCfg.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.ID, userID)
	assert.Equal(t, "maria@example.com", email)
}

func TestLogin_SenhaIncorreta(t *testing.T) {
	repo := newFakeUsuarioRepo()
	uc := auth.NewAuthUseCase(repo, testJWTCfg)

	_, err := uc.Registrar(dto.RegistroRequest{Nome: "Maria", Email: "maria@example.com", Senha: "segredo123"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "maria@example.com", Senha: "errada"})
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUsuarioRepo(), testJWTCfg)

	_, err := uc.Login(dto.LoginRequest{Email: "ninguem@example.com", Senha: "x"})
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}
