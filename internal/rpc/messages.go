// Hand-maintained message types for solver.proto.
//
// These are legacy-style protobuf messages: the runtime derives their
// descriptors from the struct tags, and the gRPC proto codec accepts them
// through the v1 adapter. Field numbers must match solver.proto.

package rpc

import (
	"google.golang.org/protobuf/runtime/protoimpl"
)

type SolveRequest struct {
	Preset       string  `protobuf:"bytes,1,opt,name=preset,proto3" json:"preset,omitempty"`
	Basis        string  `protobuf:"bytes,2,opt,name=basis,proto3" json:"basis,omitempty"`
	Mapping      string  `protobuf:"bytes,3,opt,name=mapping,proto3" json:"mapping,omitempty"`
	InitialState string  `protobuf:"bytes,4,opt,name=initial_state,json=initialState,proto3" json:"initial_state,omitempty"`
	Algorithm    string  `protobuf:"bytes,5,opt,name=algorithm,proto3" json:"algorithm,omitempty"`
	Distance     float64 `protobuf:"fixed64,6,opt,name=distance,proto3" json:"distance,omitempty"`
	Iterations   int32   `protobuf:"varint,7,opt,name=iterations,proto3" json:"iterations,omitempty"`
	Slices       int32   `protobuf:"varint,8,opt,name=slices,proto3" json:"slices,omitempty"`
	Shots        int32   `protobuf:"varint,9,opt,name=shots,proto3" json:"shots,omitempty"`
	Seed         int64   `protobuf:"varint,10,opt,name=seed,proto3" json:"seed,omitempty"`
}

func (m *SolveRequest) Reset() { *m = SolveRequest{} }
func (m *SolveRequest) String() string {
	return protoimpl.X.MessageStringOf(protoimpl.X.ProtoMessageV2Of(m))
}
func (*SolveRequest) ProtoMessage() {}

type SolveReply struct {
	Energy           float64 `protobuf:"fixed64,1,opt,name=energy,proto3" json:"energy,omitempty"`
	Electronic       float64 `protobuf:"fixed64,2,opt,name=electronic,proto3" json:"electronic,omitempty"`
	HartreeFock      float64 `protobuf:"fixed64,3,opt,name=hartree_fock,json=hartreeFock,proto3" json:"hartree_fock,omitempty"`
	NuclearRepulsion float64 `protobuf:"fixed64,4,opt,name=nuclear_repulsion,json=nuclearRepulsion,proto3" json:"nuclear_repulsion,omitempty"`
	Phase            float64 `protobuf:"fixed64,5,opt,name=phase,proto3" json:"phase,omitempty"`
	NumQubits        int32   `protobuf:"varint,6,opt,name=num_qubits,json=numQubits,proto3" json:"num_qubits,omitempty"`
	NumTerms         int32   `protobuf:"varint,7,opt,name=num_terms,json=numTerms,proto3" json:"num_terms,omitempty"`
}

func (m *SolveReply) Reset() { *m = SolveReply{} }
func (m *SolveReply) String() string {
	return protoimpl.X.MessageStringOf(protoimpl.X.ProtoMessageV2Of(m))
}
func (*SolveReply) ProtoMessage() {}
