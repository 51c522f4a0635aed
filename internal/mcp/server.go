// Package mcp exposes the refactoring operations to MCP-compatible editor
// agents over stdio JSON-RPC. The server owns all file I/O; the underlying
// operations are pure text transformations.
package mcp

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"csiface/internal/editor"
	"csiface/internal/extract"
	"csiface/internal/parser"
	"csiface/internal/stubs"
)

// ToolHandler handles a tool call.
type ToolHandler func(params json.RawMessage) (interface{}, error)

// Request is a JSON-RPC request.
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// Response is a JSON-RPC response.
type Response struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   *Error      `json:"error,omitempty"`
}

// Error is a JSON-RPC error.
type Error struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// InitializeResult is the result of initialize.
type InitializeResult struct {
	ProtocolVersion string       `json:"protocolVersion"`
	ServerInfo      ServerInfo   `json:"serverInfo"`
	Capabilities    Capabilities `json:"capabilities"`
}

// ServerInfo contains server information.
type ServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Capabilities contains server capabilities.
type Capabilities struct {
	Tools *ToolsCapability `json:"tools,omitempty"`
}

// ToolsCapability contains tools capability.
type ToolsCapability struct {
	ListChanged bool `json:"listChanged,omitempty"`
}

// ToolInfo describes a tool.
type ToolInfo struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	InputSchema InputSchema `json:"inputSchema"`
}

// InputSchema describes tool input.
type InputSchema struct {
	Type       string              `json:"type"`
	Properties map[string]Property `json:"properties,omitempty"`
	Required   []string            `json:"required,omitempty"`
}

// Property describes a tool input property.
type Property struct {
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

// Server is the MCP server.
type Server struct {
	version string
	tools   map[string]ToolHandler
}

// NewServer creates an MCP server.
func NewServer(version string) *Server {
	s := &Server{
		version: version,
		tools:   make(map[string]ToolHandler),
	}
	s.registerTools()
	return s
}

func (s *Server) registerTools() {
	s.tools["extract_interface"] = s.handleExtractInterface
	s.tools["add_member"] = s.handleAddMember
	s.tools["implement_interface"] = s.handleImplementInterface
	s.tools["list_interfaces"] = s.handleListInterfaces
}

// Run serves requests from stdin until EOF.
func (s *Server) Run() {
	scanner := bufio.NewScanner(os.Stdin)
	buf := make([]byte, 0, 1024*1024)
	scanner.Buffer(buf, 10*1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		var req Request
		if err := json.Unmarshal([]byte(line), &req); err != nil {
			fmt.Fprintf(os.Stderr, "Parse error: %v\n", err)
			continue
		}

		s.handleRequest(&req)
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Scanner error: %v\n", err)
	}
}

func (s *Server) handleRequest(req *Request) {
	switch req.Method {
	case "initialize":
		s.handleInitialize(req)
	case "initialized":
		// No response needed
	case "tools/list":
		s.handleToolsList(req)
	case "tools/call":
		s.handleToolsCall(req)
	default:
		s.sendError(req.ID, -32601, "Method not found", req.Method)
	}
}

func (s *Server) handleInitialize(req *Request) {
	result := InitializeResult{
		ProtocolVersion: "2024-11-05",
		ServerInfo: ServerInfo{
			Name:    "csiface",
			Version: s.version,
		},
		Capabilities: Capabilities{
			Tools: &ToolsCapability{ListChanged: false},
		},
	}
	s.sendResult(req.ID, result)
}

func (s *Server) handleToolsList(req *Request) {
	fileProp := Property{Type: "string", Description: "Path to a C# source file"}
	tools := []ToolInfo{
		{
			Name:        "extract_interface",
			Description: "Extract an interface from the public members of a class file",
			InputSchema: InputSchema{
				Type: "object",
				Properties: map[string]Property{
					"file": fileProp,
					"name": {Type: "string", Description: "Interface name or relative path (default: I<ClassName>)"},
				},
				Required: []string{"file"},
			},
		},
		{
			Name:        "add_member",
			Description: "Add a public method or property from a class file to an interface file",
			InputSchema: InputSchema{
				Type: "object",
				Properties: map[string]Property{
					"file":           fileProp,
					"interface_file": {Type: "string", Description: "Path to the interface file to update"},
					"member":         {Type: "string", Description: "Bare name of the member to add"},
				},
				Required: []string{"file", "interface_file", "member"},
			},
		},
		{
			Name:        "implement_interface",
			Description: "Insert stub implementations for interface members the class does not define",
			InputSchema: InputSchema{
				Type: "object",
				Properties: map[string]Property{
					"file":           fileProp,
					"interface_file": {Type: "string", Description: "Path to the interface file"},
				},
				Required: []string{"file", "interface_file"},
			},
		},
		{
			Name:        "list_interfaces",
			Description: "List the interface names a class declares, by naming convention",
			InputSchema: InputSchema{
				Type: "object",
				Properties: map[string]Property{
					"file": fileProp,
				},
				Required: []string{"file"},
			},
		},
	}
	s.sendResult(req.ID, map[string]interface{}{"tools": tools})
}

func (s *Server) handleToolsCall(req *Request) {
	var params struct {
		Name      string          `json:"name"`
		Arguments json.RawMessage `json:"arguments"`
	}

	if err := json.Unmarshal(req.Params, &params); err != nil {
		s.sendError(req.ID, -32602, "Invalid params", err.Error())
		return
	}

	handler, ok := s.tools[params.Name]
	if !ok {
		s.sendError(req.ID, -32601, "Tool not found", params.Name)
		return
	}

	result, err := handler(params.Arguments)
	if err != nil {
		s.sendResult(req.ID, map[string]interface{}{
			"content": []map[string]interface{}{
				{"type": "text", "text": fmt.Sprintf("Error: %v", err)},
			},
			"isError": true,
		})
		return
	}

	resultJSON, _ := json.MarshalIndent(result, "", "  ")
	s.sendResult(req.ID, map[string]interface{}{
		"content": []map[string]interface{}{
			{"type": "text", "text": string(resultJSON)},
		},
	})
}

func (s *Server) sendResult(id interface{}, result interface{}) {
	s.send(Response{JSONRPC: "2.0", ID: id, Result: result})
}

func (s *Server) sendError(id interface{}, code int, message string, data interface{}) {
	// No error responses for notifications (null ID)
	if id == nil {
		fmt.Fprintf(os.Stderr, "Error (no id): %s: %v\n", message, data)
		return
	}
	s.send(Response{
		JSONRPC: "2.0",
		ID:      id,
		Error:   &Error{Code: code, Message: message, Data: data},
	})
}

func (s *Server) send(resp Response) {
	output, _ := json.Marshal(resp)
	fmt.Println(string(output))
}

// --- Tool Handlers ---

func (s *Server) handleExtractInterface(params json.RawMessage) (interface{}, error) {
	var p struct {
		File string `json:"file"`
		Name string `json:"name"`
	}
	json.Unmarshal(params, &p)

	classText, err := os.ReadFile(p.File)
	if err != nil {
		return nil, err
	}

	base := strings.TrimSuffix(filepath.Base(p.File), ".cs")
	result := extract.GenerateInterfaceCode(string(classText), p.Name, base)

	className := parser.ClassName(string(classText))
	updated, headerOK := editor.AddInterfaceToClass(string(classText), className, result.InterfaceName)

	out := map[string]interface{}{
		"interface_name": result.InterfaceName,
		"file_name":      result.FileName,
		"interface_code": result.Body,
		"class_code":     updated,
	}
	if result.Namespace != "" {
		out["namespace"] = result.Namespace
	}
	if !headerOK {
		out["warning"] = fmt.Sprintf("could not locate the declaration of class %q; class file left unchanged", className)
	}
	return out, nil
}

func (s *Server) handleAddMember(params json.RawMessage) (interface{}, error) {
	var p struct {
		File          string `json:"file"`
		InterfaceFile string `json:"interface_file"`
		Member        string `json:"member"`
	}
	json.Unmarshal(params, &p)

	classText, err := os.ReadFile(p.File)
	if err != nil {
		return nil, err
	}
	ifaceText, err := os.ReadFile(p.InterfaceFile)
	if err != nil {
		return nil, err
	}

	line := parser.FindMemberLine(string(classText), p.Member)
	if line == "" {
		return nil, fmt.Errorf("no public member named %q found in %s", p.Member, p.File)
	}

	updated := string(ifaceText)
	if m := parser.ParseMethodLine(line, string(classText)); m != nil {
		updated = editor.AddMethod(updated, *m)
	} else if prop := parser.ParsePropertyLine(line); prop != nil {
		updated = editor.AddProperty(updated, *prop)
	} else {
		return nil, fmt.Errorf("member %q is not a recognizable public method or property", p.Member)
	}

	return map[string]interface{}{
		"interface_code": updated,
		"changed":        updated != string(ifaceText),
	}, nil
}

func (s *Server) handleImplementInterface(params json.RawMessage) (interface{}, error) {
	var p struct {
		File          string `json:"file"`
		InterfaceFile string `json:"interface_file"`
	}
	json.Unmarshal(params, &p)

	classText, err := os.ReadFile(p.File)
	if err != nil {
		return nil, err
	}
	ifaceText, err := os.ReadFile(p.InterfaceFile)
	if err != nil {
		return nil, err
	}

	members := stubs.ParseInterfaceMembers(string(ifaceText))
	missing := stubs.FilterUnimplemented(members, string(classText))
	updated := stubs.InsertIntoClass(string(classText), stubs.GenerateStubs(missing))

	return map[string]interface{}{
		"class_code":   updated,
		"stubbed":      missing.Count(),
		"already_done": members.Count() - missing.Count(),
	}, nil
}

func (s *Server) handleListInterfaces(params json.RawMessage) (interface{}, error) {
	var p struct {
		File string `json:"file"`
	}
	json.Unmarshal(params, &p)

	classText, err := os.ReadFile(p.File)
	if err != nil {
		return nil, err
	}

	names := parser.ImplementedInterfaces(string(classText))
	return map[string]interface{}{
		"interfaces": names,
		"total":      len(names),
	}, nil
}
