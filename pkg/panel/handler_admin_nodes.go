package panel

import (
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/zeronetwork/panelmock/pkg/query"
)

func adminListNodes(c *Call) (int, any) {
	page, perPage := query.Page(c.Query)
	rows, meta := query.Slice(c.store.Nodes, page, perPage)
	return http.StatusOK, map[string]any{"nodes": rows, "pagination": meta}
}

func adminGetNode(c *Call) (int, any) {
	n := c.store.NodeByID(c.ID("id"))
	if n == nil {
		return notFound("Node")
	}
	return http.StatusOK, map[string]any{"node": n}
}

func adminCreateNode(c *Call) (int, any) {
	var req CreateNodeRequest
	if err := c.Decode(&req); err != nil {
		return fail(err)
	}
	if req.Name == "" {
		return badRequest("Node name is required")
	}
	if req.ControlEndpoint == "" {
		return badRequest("Control endpoint is required")
	}
	location := req.Region
	if location == "" {
		location = req.Country
	}
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}
	now := c.store.NowMillis()
	n := &Node{
		ID:                c.store.NextID(),
		Name:              req.Name,
		Location:          location,
		Region:            req.Region,
		Country:           req.Country,
		ISP:               req.ISP,
		Status:            intOr(req.Status, NodeDegraded),
		Tags:              tags,
		CapacityMbps:      req.CapacityMbps,
		Description:       req.Description,
		AccessAddress:     req.AccessAddress,
		ControlEndpoint:   req.ControlEndpoint,
		StatusSyncEnabled: boolOr(req.StatusSyncEnabled, true),
		Kernels:           []NodeKernel{},
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	c.store.Nodes = append([]*Node{n}, c.store.Nodes...)
	return http.StatusCreated, map[string]any{"node": n}
}

// adminSyncNodeStatuses probes only the nodes named in the request.
// Nodes without a reachable control plane or administratively disabled
// produce failure results instead of status changes.
func adminSyncNodeStatuses(c *Call) (int, any) {
	var req NodeStatusSyncRequest
	if err := c.Decode(&req); err != nil {
		return fail(err)
	}
	nowSec := c.store.NowSeconds()
	results := []NodeSyncResult{}
	for _, nodeID := range req.NodeIDs {
		n := c.store.NodeByID(nodeID)
		switch {
		case n == nil:
			results = append(results, NodeSyncResult{NodeID: nodeID, Status: SyncResultFailed, Message: "Node not found", SyncedAt: nowSec})
		case n.ControlEndpoint == "":
			results = append(results, NodeSyncResult{NodeID: nodeID, Status: SyncResultFailed, Message: "Control endpoint not configured", SyncedAt: nowSec})
		case n.Status == NodeDisabled:
			results = append(results, NodeSyncResult{NodeID: nodeID, Status: SyncResultSkipped, Message: "Node disabled", SyncedAt: nowSec})
		default:
			next := NodeOnline
			if n.Status == NodeDegraded {
				next = NodeDegraded
			}
			n.Status = next
			n.LastSyncedAt = nowSec
			results = append(results, NodeSyncResult{NodeID: nodeID, Status: next, Message: "Status synced", SyncedAt: nowSec})
		}
	}
	return http.StatusOK, map[string]any{"results": results}
}

func adminUpdateNode(c *Call) (int, any) {
	n := c.store.NodeByID(c.ID("id"))
	if n == nil {
		return notFound("Node")
	}
	var req UpdateNodeRequest
	if err := c.Decode(&req); err != nil {
		return fail(err)
	}
	if req.Name != nil && *req.Name == "" {
		return badRequest("Node name is required")
	}
	// Control credentials (control_token and the access/secret key
	// pair) are deliberately dropped: the stored node has no
	// credential fields, so they cannot round-trip into a response.
	if req.Name != nil {
		n.Name = *req.Name
	}
	if req.Region != nil {
		n.Region = *req.Region
	}
	if req.Country != nil {
		n.Country = *req.Country
	}
	if req.ISP != nil {
		n.ISP = *req.ISP
	}
	if req.Status != nil {
		n.Status = *req.Status
	}
	if req.Tags != nil {
		n.Tags = *req.Tags
	}
	if n.Tags == nil {
		n.Tags = []string{}
	}
	if req.CapacityMbps != nil {
		n.CapacityMbps = *req.CapacityMbps
	}
	if req.Description != nil {
		n.Description = *req.Description
	}
	if req.AccessAddress != nil {
		n.AccessAddress = *req.AccessAddress
	}
	if req.ControlEndpoint != nil {
		n.ControlEndpoint = *req.ControlEndpoint
	}
	if req.StatusSyncEnabled != nil {
		n.StatusSyncEnabled = *req.StatusSyncEnabled
	}
	n.UpdatedAt = c.store.NowMillis()
	return http.StatusOK, map[string]any{"node": n}
}

func adminDeleteNode(c *Call) (int, any) {
	id := c.ID("id")
	for i, n := range c.store.Nodes {
		if n.ID == id {
			c.store.Nodes = append(c.store.Nodes[:i], c.store.Nodes[i+1:]...)
			return http.StatusNoContent, nil
		}
	}
	return notFound("Node")
}

func adminDisableNode(c *Call) (int, any) {
	n := c.store.NodeByID(c.ID("id"))
	if n == nil {
		return notFound("Node")
	}
	n.Status = NodeDisabled
	n.UpdatedAt = c.store.NowMillis()
	return http.StatusOK, map[string]any{"node": n}
}

func adminListNodeKernels(c *Call) (int, any) {
	n := c.store.NodeByID(c.ID("id"))
	if n == nil {
		return notFound("Node")
	}
	return http.StatusOK, map[string]any{"node_id": n.ID, "kernels": n.Kernels}
}

// adminSyncNodeKernels refreshes kernel deployments on one node. With
// a protocol in the request the sync targets that kernel, creating it
// on first sight; without one it stamps every kernel. The node's
// protocol list is recomputed as the union of its kernels.
func adminSyncNodeKernels(c *Call) (int, any) {
	n := c.store.NodeByID(c.ID("id"))
	if n == nil {
		return notFound("Node")
	}
	var req KernelSyncRequest
	if err := c.Decode(&req); err != nil {
		return fail(err)
	}
	nowSec := c.store.NowSeconds()

	revision := ""
	synced := 0
	if req.Protocol != "" {
		found := false
		for i := range n.Kernels {
			if n.Kernels[i].Protocol == req.Protocol {
				found = true
			}
		}
		if !found {
			n.Kernels = append(n.Kernels, NodeKernel{
				Protocol: req.Protocol,
				Revision: "v1.0.0",
				Status:   SyncDone,
				LastSyncedAt: nowSec,
			})
		}
		for i := range n.Kernels {
			if n.Kernels[i].Protocol == req.Protocol {
				n.Kernels[i].Status = SyncDone
				n.Kernels[i].LastSyncedAt = nowSec
				revision = n.Kernels[i].Revision
				synced++
			}
		}
	} else {
		for i := range n.Kernels {
			n.Kernels[i].Status = SyncDone
			n.Kernels[i].LastSyncedAt = nowSec
			synced++
		}
	}

	for _, k := range n.Kernels {
		if !slices.Contains(n.Protocols, k.Protocol) {
			n.Protocols = append(n.Protocols, k.Protocol)
		}
	}
	n.LastSyncedAt = nowSec
	n.UpdatedAt = nowSec

	message := fmt.Sprintf("synced %d kernels", synced)
	if req.Protocol != "" {
		message = "ok"
	}
	return http.StatusOK, map[string]any{
		"node_id":   n.ID,
		"protocol":  req.Protocol,
		"revision":  revision,
		"synced_at": nowSec,
		"message":   message,
	}
}

func adminListBindings(c *Call) (int, any) {
	q, hasQ := query.Fold(c.Query, "q")
	protocol, hasProtocol := query.Fold(c.Query, "protocol")
	status, hasStatus := query.Int(c.Query, "status")
	nodeID, hasNode := query.Int(c.Query, "node_id")

	bindings := []*ProtocolBinding{}
	for _, b := range c.store.Bindings {
		if hasQ {
			haystack := strings.ToLower(strings.Join([]string{
				b.Name, b.NodeName, b.Protocol,
				strconv.FormatInt(b.ID, 10), strconv.FormatInt(b.NodeID, 10),
			}, " "))
			if !strings.Contains(haystack, q) {
				continue
			}
		}
		if hasProtocol && strings.ToLower(b.Protocol) != protocol {
			continue
		}
		if hasStatus && b.Status != int(status) {
			continue
		}
		if hasNode && b.NodeID != nodeID {
			continue
		}
		bindings = append(bindings, b)
	}
	page, perPage := query.Page(c.Query)
	rows, meta := query.Slice(bindings, page, perPage)
	return http.StatusOK, map[string]any{"bindings": rows, "pagination": meta}
}

func adminCreateBinding(c *Call) (int, any) {
	var req CreateBindingRequest
	if err := c.Decode(&req); err != nil {
		return fail(err)
	}
	if req.NodeID == 0 || req.Protocol == "" || req.Role == "" || req.KernelID == "" || req.Profile == nil {
		return badRequest("Node, protocol, role, kernel id, and profile are required")
	}
	nodeName := ""
	if n := c.store.NodeByID(req.NodeID); n != nil {
		nodeName = n.Name
	}
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}
	now := c.store.NowMillis()
	b := &ProtocolBinding{
		ID:           c.store.NextID(),
		Name:         req.Name,
		NodeID:       req.NodeID,
		NodeName:     nodeName,
		Protocol:     req.Protocol,
		Role:         req.Role,
		KernelID:     req.KernelID,
		Listen:       req.Listen,
		Connect:      req.Connect,
		AccessPort:   req.AccessPort,
		Status:       intOr(req.Status, StatusActive),
		SyncStatus:   SyncPending,
		HealthStatus: 1,
		Tags:         tags,
		Description:  req.Description,
		Profile:      req.Profile,
		Metadata:     req.Metadata,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	c.store.Bindings = append([]*ProtocolBinding{b}, c.store.Bindings...)
	return http.StatusCreated, b
}

func adminUpdateBinding(c *Call) (int, any) {
	b := c.store.BindingByID(c.ID("id"))
	if b == nil {
		return notFound("Protocol binding")
	}
	var req UpdateBindingRequest
	if err := c.Decode(&req); err != nil {
		return fail(err)
	}
	if req.Name != nil {
		b.Name = *req.Name
	}
	if req.NodeID != nil && *req.NodeID != b.NodeID {
		b.NodeID = *req.NodeID
		b.NodeName = ""
		if n := c.store.NodeByID(b.NodeID); n != nil {
			b.NodeName = n.Name
		}
	}
	if req.Protocol != nil {
		b.Protocol = *req.Protocol
	}
	if req.Role != nil {
		b.Role = *req.Role
	}
	if req.KernelID != nil {
		b.KernelID = *req.KernelID
	}
	if req.Listen != nil {
		b.Listen = *req.Listen
	}
	if req.Connect != nil {
		b.Connect = *req.Connect
	}
	if req.AccessPort != nil {
		b.AccessPort = *req.AccessPort
	}
	if req.Status != nil {
		b.Status = *req.Status
	}
	if req.Tags != nil {
		b.Tags = *req.Tags
	}
	if req.Description != nil {
		b.Description = *req.Description
	}
	if req.Profile != nil {
		b.Profile = *req.Profile
	}
	b.UpdatedAt = c.store.NowMillis()
	return http.StatusOK, b
}

func adminDeleteBinding(c *Call) (int, any) {
	id := c.ID("id")
	for i, b := range c.store.Bindings {
		if b.ID == id {
			c.store.Bindings = append(c.store.Bindings[:i], c.store.Bindings[i+1:]...)
			return http.StatusNoContent, nil
		}
	}
	return notFound("Protocol binding")
}

func (s *Store) stampBindingSync(b *ProtocolBinding, nowSec int64) BindingSyncResult {
	b.SyncStatus = SyncDone
	b.LastSyncedAt = nowSec
	b.LastSyncError = ""
	return BindingSyncResult{
		BindingID: b.ID,
		Status:    SyncResultOK,
		Message:   "Binding synced",
		SyncedAt:  nowSec,
	}
}

func adminSyncBinding(c *Call) (int, any) {
	b := c.store.BindingByID(c.ID("id"))
	if b == nil {
		return notFound("Protocol binding")
	}
	return http.StatusOK, c.store.stampBindingSync(b, c.store.NowSeconds())
}

// adminBulkSyncBindings resolves the target set by binding ids first,
// then node ids, and falls back to every binding.
func adminBulkSyncBindings(c *Call) (int, any) {
	var req BindingSyncRequest
	if err := c.Decode(&req); err != nil {
		return fail(err)
	}
	var targets []*ProtocolBinding
	switch {
	case len(req.BindingIDs) > 0:
		for _, bid := range req.BindingIDs {
			if b := c.store.BindingByID(bid); b != nil {
				targets = append(targets, b)
			}
		}
	case len(req.NodeIDs) > 0:
		for _, nid := range req.NodeIDs {
			targets = append(targets, c.store.BindingsByNode(nid)...)
		}
	default:
		targets = c.store.Bindings
	}

	nowSec := c.store.NowSeconds()
	results := []BindingSyncResult{}
	for _, b := range targets {
		results = append(results, c.store.stampBindingSync(b, nowSec))
	}
	return http.StatusOK, map[string]any{"results": results}
}

// adminSyncBindingStatuses refreshes binding state node by node.
// Disabled nodes are skipped, everything else gets its bindings
// restamped.
func adminSyncBindingStatuses(c *Call) (int, any) {
	var req NodeStatusSyncRequest
	if err := c.Decode(&req); err != nil {
		return fail(err)
	}
	nodes := []*Node{}
	if len(req.NodeIDs) > 0 {
		for _, nid := range req.NodeIDs {
			if n := c.store.NodeByID(nid); n != nil {
				nodes = append(nodes, n)
			}
		}
	} else {
		nodes = c.store.Nodes
	}

	nowSec := c.store.NowSeconds()
	results := []NodeSyncResult{}
	for _, n := range nodes {
		if n.Status == NodeDisabled {
			results = append(results, NodeSyncResult{
				NodeID:   n.ID,
				Status:   SyncResultSkipped,
				Message:  "Node disabled",
				SyncedAt: nowSec,
			})
			continue
		}
		updated := 0
		for _, b := range c.store.BindingsByNode(n.ID) {
			c.store.stampBindingSync(b, nowSec)
			updated++
		}
		results = append(results, NodeSyncResult{
			NodeID:   n.ID,
			Status:   SyncResultOK,
			Message:  "Protocol status synced",
			SyncedAt: nowSec,
			Updated:  updated,
		})
	}
	return http.StatusOK, map[string]any{"results": results}
}

func adminListEntries(c *Call) (int, any) {
	q, hasQ := query.Fold(c.Query, "q")
	protocol, hasProtocol := query.Fold(c.Query, "protocol")
	status, hasStatus := query.Int(c.Query, "status")
	bindingID, hasBinding := query.Int(c.Query, "binding_id")

	entries := []*ProtocolEntry{}
	for _, e := range c.store.Entries {
		if hasQ {
			haystack := strings.ToLower(strings.Join([]string{
				e.Name, e.BindingName, e.NodeName, e.Protocol,
				strconv.FormatInt(e.ID, 10), strconv.FormatInt(e.BindingID, 10),
			}, " "))
			if !strings.Contains(haystack, q) {
				continue
			}
		}
		if hasProtocol && strings.ToLower(e.Protocol) != protocol {
			continue
		}
		if hasStatus && e.Status != int(status) {
			continue
		}
		if hasBinding && e.BindingID != bindingID {
			continue
		}
		entries = append(entries, e)
	}
	page, perPage := query.Page(c.Query)
	rows, meta := query.Slice(entries, page, perPage)
	return http.StatusOK, map[string]any{"entries": rows, "pagination": meta}
}

func adminCreateEntry(c *Call) (int, any) {
	var req CreateEntryRequest
	if err := c.Decode(&req); err != nil {
		return fail(err)
	}
	if req.BindingID == 0 || req.EntryAddress == "" || req.EntryPort == 0 {
		return badRequest("Binding id, entry address, and port are required")
	}
	b := c.store.BindingByID(req.BindingID)
	if b == nil {
		return notFound("Protocol binding")
	}
	name := req.Name
	if name == "" {
		name = b.Name + " " + req.EntryAddress
	}
	protocol := req.Protocol
	if protocol == "" {
		protocol = b.Protocol
	}
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}
	now := c.store.NowMillis()
	e := &ProtocolEntry{
		ID:            c.store.NextID(),
		Name:          name,
		BindingID:     b.ID,
		BindingName:   b.Name,
		NodeID:        b.NodeID,
		NodeName:      b.NodeName,
		Protocol:      protocol,
		Status:        intOr(req.Status, StatusActive),
		BindingStatus: b.Status,
		HealthStatus:  b.HealthStatus,
		EntryAddress:  req.EntryAddress,
		EntryPort:     req.EntryPort,
		Tags:          tags,
		Description:   req.Description,
		Profile:       req.Profile,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	c.store.Entries = append([]*ProtocolEntry{e}, c.store.Entries...)
	return http.StatusCreated, e
}

func adminUpdateEntry(c *Call) (int, any) {
	e := c.store.EntryByID(c.ID("id"))
	if e == nil {
		return notFound("Protocol entry")
	}
	var req UpdateEntryRequest
	if err := c.Decode(&req); err != nil {
		return fail(err)
	}
	if req.Name != nil {
		e.Name = *req.Name
	}
	if req.Protocol != nil {
		e.Protocol = *req.Protocol
	}
	if req.Status != nil {
		e.Status = *req.Status
	}
	if req.EntryAddress != nil {
		e.EntryAddress = *req.EntryAddress
	}
	if req.EntryPort != nil {
		e.EntryPort = *req.EntryPort
	}
	if req.Tags != nil {
		e.Tags = *req.Tags
	}
	if req.Description != nil {
		e.Description = *req.Description
	}
	if req.Profile != nil {
		e.Profile = *req.Profile
	}
	e.UpdatedAt = c.store.NowMillis()
	return http.StatusOK, e
}

func adminDeleteEntry(c *Call) (int, any) {
	id := c.ID("id")
	for i, e := range c.store.Entries {
		if e.ID == id {
			c.store.Entries = append(c.store.Entries[:i], c.store.Entries[i+1:]...)
			return http.StatusNoContent, nil
		}
	}
	return notFound("Protocol entry")
}
