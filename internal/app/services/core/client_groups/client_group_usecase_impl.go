package clientGroups

import (
	"backoffice-service/internal/app/contracts"
	"backoffice-service/internal/app/models"
	"backoffice-service/internal/pkg/constvars"
	"backoffice-service/internal/pkg/dto/requests"
	"backoffice-service/internal/pkg/exceptions"
	"backoffice-service/internal/pkg/utils"
	"context"
	"fmt"
	"net/url"
	"strings"
)

var clientGroupTypeLabels = map[string]string{
	constvars.ClientGroupTypeAdult:  "Client",
	constvars.ClientGroupTypeMinor:  "Minor",
	constvars.ClientGroupTypeCouple: "Couple",
	constvars.ClientGroupTypeFamily: "Family",
}

var clientGroupTabs = []string{
	constvars.ClientGroupTabGroupInfo,
	constvars.ClientGroupTabClients,
	constvars.ClientGroupTabBilling,
}

type clientGroupUsecase struct {
	ClientGroupRepository contracts.ClientGroupRepository
}

func NewClientGroupUsecase(clientGroupRepository contracts.ClientGroupRepository) contracts.ClientGroupUsecase {
	return &clientGroupUsecase{
		ClientGroupRepository: clientGroupRepository,
	}
}

func (uc *clientGroupUsecase) FindEditView(ctx context.Context, request *requests.FindClientGroupEditView) (*models.ClientGroupEditView, error) {
	clientGroup, err := uc.ClientGroupRepository.FindByID(ctx, request.ClientGroupID, request.IncludeProfile, request.IncludeAddress)
	if err != nil {
		return nil, err
	}

	query, err := url.ParseQuery(request.RawQuery)
	if err != nil {
		query = url.Values{}
	}
	activeTab := ResolveActiveTab(constvars.ClientGroupTabGroupInfo, request.Tab)
	typeLabel := ClientGroupTypeLabel(clientGroup.Type)
	path := fmt.Sprintf(constvars.ClientGroupEditPagePathFormat, clientGroup.ID)

	tabs := make([]models.ClientGroupTab, 0, len(clientGroupTabs))
	for _, tab := range clientGroupTabs {
		tabs = append(tabs, models.ClientGroupTab{
			Value: tab,
			Label: tabLabel(tab, typeLabel),
			URL:   BuildTabURL(path, query, tab),
		})
	}

	return &models.ClientGroupEditView{
		Loading:     false,
		ClientGroup: clientGroup,
		TypeLabel:   typeLabel,
		Heading:     clientGroupHeading(clientGroup),
		ActiveTab:   activeTab,
		Tabs:        tabs,
	}, nil
}

func (uc *clientGroupUsecase) ChangeTab(ctx context.Context, request *requests.ChangeClientGroupTab) (*models.ClientGroupTabChange, error) {
	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	query, err := url.ParseQuery(strings.TrimPrefix(request.RawQuery, "?"))
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	path := request.Path
	if path == "" {
		path = fmt.Sprintf(constvars.ClientGroupEditPagePathFormat, request.ClientGroupID)
	}

	return &models.ClientGroupTabChange{
		ActiveTab: request.Tab,
		URL:       BuildTabURL(path, query, request.Tab),
		Scroll:    false,
	}, nil
}

// ResolveActiveTab keeps current unless requested names a known tab.
func ResolveActiveTab(current, requested string) string {
	for _, tab := range clientGroupTabs {
		if tab == requested {
			return tab
		}
	}
	return current
}

// BuildTabURL keeps every existing query parameter and sets tab.
func BuildTabURL(path string, query url.Values, tab string) string {
	params := url.Values{}
	for key, values := range query {
		params[key] = append([]string(nil), values...)
	}
	params.Set(constvars.QueryParamTab, tab)
	return path + "?" + params.Encode()
}

func ClientGroupTypeLabel(groupType string) string {
	if label, ok := clientGroupTypeLabels[strings.ToLower(groupType)]; ok {
		return label
	}
	return clientGroupTypeLabels[constvars.ClientGroupTypeAdult]
}

func tabLabel(tab, typeLabel string) string {
	switch tab {
	case constvars.ClientGroupTabGroupInfo:
		return typeLabel + " Info"
	case constvars.ClientGroupTabClients:
		return "Clients"
	default:
		return "Billing and Insurance"
	}
}

// clientGroupHeading lists the member names, falling back to the group name.
func clientGroupHeading(clientGroup *models.ClientGroup) string {
	names := make([]string, 0, len(clientGroup.Memberships))
	for _, membership := range clientGroup.Memberships {
		client := membership.Client
		firstName := client.LegalFirstName
		if client.PreferredName != nil && *client.PreferredName != "" {
			firstName = *client.PreferredName
		}
		name := strings.TrimSpace(firstName + " " + client.LegalLastName)
		if name != "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return clientGroup.Name
	}
	return strings.Join(names, " & ")
}
