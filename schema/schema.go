// Package schema is the aggregated schema namespace of the SDK.
//
// Every current schema class is re-exported here under its defining module's
// name, so callers can depend on one import path while ownership of the
// classes moves between service modules across SDK versions:
//
//	var params schema.TextGenerationParameters
//
// The package also registers the "genai.schema" module scope: the full
// aggregated export list plus the compatibility entries for names that were
// renamed or removed. Old names resolve through [Resolve] with a deprecation
// event describing the migration path.
package schema

import (
	"github.com/petal-labs/genai/services/file"
	"github.com/petal-labs/genai/services/model"
	"github.com/petal-labs/genai/services/prompt"
	"github.com/petal-labs/genai/services/request"
	_ "github.com/petal-labs/genai/services/text"
	"github.com/petal-labs/genai/services/text/chat"
	"github.com/petal-labs/genai/services/text/embedding"
	"github.com/petal-labs/genai/services/text/generation"
	"github.com/petal-labs/genai/services/text/moderation"
	"github.com/petal-labs/genai/services/text/tokenization"
	"github.com/petal-labs/genai/services/tune"
	"github.com/petal-labs/genai/services/user"
)

// Re-exported from genai.file.
type (
	FilePurpose            = file.FilePurpose
	FileListSortBy         = file.FileListSortBy
	FileResult             = file.FileResult
	FileCreateResponse     = file.FileCreateResponse
	FileRetrieveResponse   = file.FileRetrieveResponse
	FileIdRetrieveResponse = file.FileIdRetrieveResponse
)

// Re-exported from genai.model.
type (
	ModelTokenLimits        = model.ModelTokenLimits
	ModelResult             = model.ModelResult
	ModelIdRetrieveResult   = model.ModelIdRetrieveResult
	ModelRetrieveResponse   = model.ModelRetrieveResponse
	ModelIdRetrieveResponse = model.ModelIdRetrieveResponse
)

// Re-exported from genai.prompt.
type (
	PromptType               = prompt.PromptType
	PromptListSource         = prompt.PromptListSource
	PromptTemplateData       = prompt.PromptTemplateData
	PromptResult             = prompt.PromptResult
	PromptCreateResponse     = prompt.PromptCreateResponse
	PromptRetrieveResponse   = prompt.PromptRetrieveResponse
	PromptIdRetrieveResponse = prompt.PromptIdRetrieveResponse
	PromptIdUpdateResponse   = prompt.PromptIdUpdateResponse
)

// Re-exported from genai.request.
type (
	RequestApiVersion                         = request.RequestApiVersion
	RequestEndpoint                           = request.RequestEndpoint
	RequestOrigin                             = request.RequestOrigin
	RequestStatus                             = request.RequestStatus
	SortDirection                             = request.SortDirection
	RequestResult                             = request.RequestResult
	RequestRetrieveResponse                   = request.RequestRetrieveResponse
	RequestChatConversationIdRetrieveResponse = request.RequestChatConversationIdRetrieveResponse
)

// Re-exported from genai.tune.
type (
	TuneAssetType              = tune.TuneAssetType
	TuneStatus                 = tune.TuneStatus
	TuneParameters             = tune.TuneParameters
	TuneResult                 = tune.TuneResult
	TuneCreateResponse         = tune.TuneCreateResponse
	TuneRetrieveResponse       = tune.TuneRetrieveResponse
	TuneIdRetrieveResponse     = tune.TuneIdRetrieveResponse
	TuningTypeRetrieveResponse = tune.TuningTypeRetrieveResponse
)

// Re-exported from genai.user.
type (
	UserApiKey           = user.UserApiKey
	UserResult           = user.UserResult
	UserCreateResponse   = user.UserCreateResponse
	UserRetrieveResponse = user.UserRetrieveResponse
	UserPatchResponse    = user.UserPatchResponse
)

// Re-exported from genai.text.chat.
type (
	ChatRole                     = chat.ChatRole
	BaseMessage                  = chat.BaseMessage
	AIMessage                    = chat.AIMessage
	HumanMessage                 = chat.HumanMessage
	SystemMessage                = chat.SystemMessage
	TextChatCreateResponse       = chat.TextChatCreateResponse
	TextChatStreamCreateResponse = chat.TextChatStreamCreateResponse
)

// Re-exported from genai.text.embedding.
type (
	TextEmbeddingParameters     = embedding.TextEmbeddingParameters
	TextEmbeddingLimit          = embedding.TextEmbeddingLimit
	TextEmbeddingCreateResponse = embedding.TextEmbeddingCreateResponse
)

// Re-exported from genai.text.generation.
type (
	DecodingMethod                               = generation.DecodingMethod
	LengthPenalty                                = generation.LengthPenalty
	StopReason                                   = generation.StopReason
	TrimMethod                                   = generation.TrimMethod
	TextGenerationReturnOptions                  = generation.TextGenerationReturnOptions
	TextGenerationParameters                     = generation.TextGenerationParameters
	TextGenerationResult                         = generation.TextGenerationResult
	TextGenerationCreateResponse                 = generation.TextGenerationCreateResponse
	TextGenerationStreamCreateResponse           = generation.TextGenerationStreamCreateResponse
	TextGenerationComparisonParameters           = generation.TextGenerationComparisonParameters
	TextGenerationComparisonCreateRequestRequest = generation.TextGenerationComparisonCreateRequestRequest
	TextGenerationComparisonCreateResponse       = generation.TextGenerationComparisonCreateResponse
	TextGenerationLimitRetrieveResponse          = generation.TextGenerationLimitRetrieveResponse
	TextGenerationFeedbackCategory               = generation.TextGenerationFeedbackCategory
	TextGenerationFeedbackResult                 = generation.TextGenerationFeedbackResult
	TextGenerationIdFeedbackCreateResponse       = generation.TextGenerationIdFeedbackCreateResponse
	TextGenerationIdFeedbackRetrieveResponse     = generation.TextGenerationIdFeedbackRetrieveResponse
	TextGenerationIdFeedbackUpdateResponse       = generation.TextGenerationIdFeedbackUpdateResponse
)

// Re-exported from genai.text.moderation.
type (
	HAPOptions                   = moderation.HAPOptions
	ModerationHAP                = moderation.ModerationHAP
	ModerationImplicitHate       = moderation.ModerationImplicitHate
	ModerationStigma             = moderation.ModerationStigma
	ModerationParameters         = moderation.ModerationParameters
	ModerationPosition           = moderation.ModerationPosition
	ModerationTokens             = moderation.ModerationTokens
	TextModeration               = moderation.TextModeration
	TextModerationCreateResponse = moderation.TextModerationCreateResponse
)

// Re-exported from genai.text.tokenization.
type (
	TextTokenizationReturnOptions  = tokenization.TextTokenizationReturnOptions
	TextTokenizationParameters     = tokenization.TextTokenizationParameters
	TextTokenizationCreateResults  = tokenization.TextTokenizationCreateResults
	TextTokenizationCreateResponse = tokenization.TextTokenizationCreateResponse
)
