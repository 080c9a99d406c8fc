package impl

import (
	"bytes"
	"context"
	"image/png"
	"regexp"
	"strings"
	"testing"
	"time"

	"loyalty/internal/domain/entity"
	domainerrors "loyalty/internal/domain/errors"
	"loyalty/internal/infra/persistence/model"
	"loyalty/internal/infra/persistence/postgres"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cardCodePattern = regexp.MustCompile(`^[A-Z0-9]{6}-[A-Z0-9]{6}$`)

func countActiveIdentifiers(t *testing.T, f *serviceFixture, cardID uuid.UUID) int64 {
	t.Helper()

	var count int64
	require.NoError(t, f.db.Model(&model.CardIdentifierModel{}).
		Where("card_id = ? AND is_active = ?", cardID, true).
		Count(&count).Error)

	return count
}

func TestCodeIdentifierService_GenerateAndValidate(t *testing.T) {
	f := createTestServices(t)
	ctx := context.Background()
	card := f.issueCard(t).Card

	identifier, err := f.codes.GenerateCode(ctx, card.ID, f.restaurant.ID)
	require.NoError(t, err)
	assert.Regexp(t, cardCodePattern, identifier.Code)
	assert.True(t, identifier.IsActive)
	assert.Equal(t, 1, identifier.CodeVersion)

	result, err := f.codes.ValidateCode(ctx, identifier.Code, f.restaurant.ID)
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Equal(t, card.ID, *result.CardID)
	assert.Equal(t, identifier.ID, *result.IdentifierID)
	assert.Equal(t, int64(1), result.UsageCount)
	assert.False(t, result.DuplicateUseWarning)
}

func TestCodeIdentifierService_ValidateNormalizesInput(t *testing.T) {
	f := createTestServices(t)
	issued := f.issueCard(t)

	lower := "  " + strings.ToLower(issued.Identifier.Code) + "\n"
	result, err := f.codes.ValidateCode(context.Background(), lower, f.restaurant.ID)
	require.NoError(t, err)
	assert.True(t, result.Valid)
}

func TestCodeIdentifierService_RotationInvalidatesOldCode(t *testing.T) {
	f := createTestServices(t)
	ctx := context.Background()
	issued := f.issueCard(t)
	old := issued.Identifier

	var latest *entity.CardIdentifier
	for range 5 {
		f.clock.Advance(time.Minute)
		next, err := f.codes.GenerateCode(ctx, issued.Card.ID, f.restaurant.ID)
		require.NoError(t, err)
		assert.NotEqual(t, old.Code, next.Code)
		assert.Equal(t, int64(1), countActiveIdentifiers(t, f, issued.Card.ID))
		latest = next
	}

	result, err := f.codes.ValidateCode(ctx, old.Code, f.restaurant.ID)
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, entity.RejectCodeRotated, result.Reason)

	result, err = f.codes.ValidateCode(ctx, latest.Code, f.restaurant.ID)
	require.NoError(t, err)
	assert.True(t, result.Valid)

	active, err := f.codes.GetActiveCode(ctx, issued.Card.ID)
	require.NoError(t, err)
	assert.Equal(t, latest.ID, active.ID)
}

func TestCodeIdentifierService_DuplicateScanWarning(t *testing.T) {
	f := createTestServices(t)
	ctx := context.Background()
	code := f.issueCard(t).Identifier.Code

	first, err := f.codes.ValidateCode(ctx, code, f.restaurant.ID)
	require.NoError(t, err)
	assert.False(t, first.DuplicateUseWarning)

	f.clock.Advance(10 * time.Second)
	second, err := f.codes.ValidateCode(ctx, code, f.restaurant.ID)
	require.NoError(t, err)
	assert.True(t, second.Valid)
	assert.True(t, second.DuplicateUseWarning)
	assert.Equal(t, int64(2), second.UsageCount)

	f.clock.Advance(2 * time.Minute)
	third, err := f.codes.ValidateCode(ctx, code, f.restaurant.ID)
	require.NoError(t, err)
	assert.False(t, third.DuplicateUseWarning)
}

func TestCodeIdentifierService_RejectionReasons(t *testing.T) {
	f := createTestServices(t)
	ctx := context.Background()
	issued := f.issueCard(t)

	result, err := f.codes.ValidateCode(ctx, "ZZZZZZ-ZZZZZZ", f.restaurant.ID)
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, entity.RejectCodeNotFound, result.Reason)
	assert.Nil(t, result.CardID)

	// Another restaurant does not see the code.
	other := &entity.Restaurant{Name: "Other", QRCodeSecret: "other", PointsPerPurchase: 5, IsActive: true}
	require.NoError(t, postgres.NewRestaurantRepository(f.db).Create(ctx, other))
	result, err = f.codes.ValidateCode(ctx, issued.Identifier.Code, other.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RejectCodeNotFound, result.Reason)

	require.NoError(t, f.db.Model(&model.CardIdentifierModel{}).
		Where("id = ?", issued.Identifier.ID).
		Update("signature", "00ff").Error)
	result, err = f.codes.ValidateCode(ctx, issued.Identifier.Code, f.restaurant.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RejectInvalidSignature, result.Reason)

	expired := testNow.Add(-time.Second)
	require.NoError(t, f.db.Model(&model.CardIdentifierModel{}).
		Where("id = ?", issued.Identifier.ID).
		Update("expires_at", expired).Error)
	result, err = f.codes.ValidateCode(ctx, issued.Identifier.Code, f.restaurant.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RejectCodeExpired, result.Reason)
}

func TestCodeIdentifierService_MissingSecret(t *testing.T) {
	f := createTestServices(t)
	ctx := context.Background()
	card := f.issueCard(t).Card

	require.NoError(t, f.db.Model(&model.RestaurantModel{}).
		Where("id = ?", f.restaurant.ID).
		Update("qr_code_secret", "").Error)

	_, err := f.codes.GenerateCode(ctx, card.ID, f.restaurant.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrSigningSecretNotConfigured))

	_, err = f.codes.ValidateCode(ctx, "ABC123-DEF456", f.restaurant.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrSigningSecretNotConfigured))

	_, err = f.codes.GenerateCode(ctx, card.ID, uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestCodeIdentifierService_GenerateRejectsForeignCard(t *testing.T) {
	f := createTestServices(t)
	ctx := context.Background()
	card := f.issueCard(t).Card

	other := &entity.Restaurant{Name: "Other", QRCodeSecret: "other", PointsPerPurchase: 5, IsActive: true}
	require.NoError(t, postgres.NewRestaurantRepository(f.db).Create(ctx, other))

	_, err := f.codes.GenerateCode(ctx, card.ID, other.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrCardNotFound))

	_, err = f.codes.GenerateCode(ctx, uuid.New(), f.restaurant.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrCardNotFound))
}

func TestCodeIdentifierService_ValidateEmptyCode(t *testing.T) {
	f := createTestServices(t)

	_, err := f.codes.ValidateCode(context.Background(), "   ", f.restaurant.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCodeIdentifierService_RotateAllCodes(t *testing.T) {
	f := createTestServices(t)
	ctx := context.Background()

	issued := make([]*entity.CardIdentifier, 0, 6)
	for range 6 {
		issued = append(issued, f.issueCard(t).Identifier)
	}

	f.clock.Advance(time.Hour)
	rotated, err := f.codes.RotateAllCodes(ctx, f.restaurant.ID)
	require.NoError(t, err)
	assert.Equal(t, len(issued), rotated)

	for _, old := range issued {
		result, err := f.codes.ValidateCode(ctx, old.Code, f.restaurant.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.RejectCodeRotated, result.Reason)
		assert.Equal(t, int64(1), countActiveIdentifiers(t, f, old.CardID))
	}
}

func TestCodeIdentifierService_CleanupIdentifiers(t *testing.T) {
	f := createTestServices(t)
	ctx := context.Background()
	card := f.issueCard(t).Card

	for range 5 {
		f.clock.Advance(time.Minute)
		_, err := f.codes.GenerateCode(ctx, card.ID, f.restaurant.ID)
		require.NoError(t, err)
	}

	_, err := f.codes.CleanupIdentifiers(ctx, f.restaurant.ID, -1)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	deleted, err := f.codes.CleanupIdentifiers(ctx, f.restaurant.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, deleted)

	var remaining int64
	require.NoError(t, f.db.Model(&model.CardIdentifierModel{}).Where("card_id = ?", card.ID).Count(&remaining).Error)
	assert.Equal(t, int64(3), remaining)
	assert.Equal(t, int64(1), countActiveIdentifiers(t, f, card.ID))

	deleted, err = f.codes.CleanupIdentifiers(ctx, f.restaurant.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)

	_, err = f.codes.GetActiveCode(ctx, card.ID)
	assert.NoError(t, err)
}

func TestCodeIdentifierService_RenderCodeQR(t *testing.T) {
	f := createTestServices(t)
	ctx := context.Background()
	card := f.issueCard(t).Card

	data, err := f.codes.RenderCodeQR(ctx, card.ID)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())

	_, err = f.codes.RenderCodeQR(ctx, uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrIdentifierNotFound))
}
